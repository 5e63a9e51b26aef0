// Package domain contains persistence models for the organization store.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
)

// Organization represents a tenant.
type Organization struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	Name           string       `gorm:"type:text;not null;uniqueIndex:ux_organizations_name" json:"organization_name"`
	Email          string       `gorm:"type:text;not null" json:"email"`
	CollectionName string       `gorm:"type:text;not null;column:collection_name" json:"collection_name"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Organization) TableName() string { return "organizations" }

// AdminCredential is a login credential scoped to one organization.
// OrganizationName is maintained by the rename/delete cascades, not by a
// foreign key constraint.
type AdminCredential struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	OrganizationName string       `gorm:"type:text;not null;index;column:organization_name" json:"organization_name"`
	Email            string       `gorm:"type:text;not null;index" json:"email"`
	PasswordHash     string       `gorm:"type:text;not null;column:password_hash" json:"-"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (AdminCredential) TableName() string { return "admin_credentials" }

// CollectionNameFor derives the per-tenant storage collection identifier
// from an organization name: lowercased, non-alphanumeric runs collapsed
// to underscores, prefixed with "org_".
func CollectionNameFor(name string) string {
	return "org_" + strings.ReplaceAll(slug.Make(name), "-", "_")
}
