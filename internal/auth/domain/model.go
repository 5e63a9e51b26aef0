// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SuperadminCredential is a login credential for cross-tenant administrative
// access. Exactly one bootstrap record is created at process start when the
// table is empty; no exposed operation creates more.
type SuperadminCredential struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Email        string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string       `gorm:"type:text;not null;column:password_hash" json:"-"`
	Role         string       `gorm:"type:text;not null" json:"role"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (SuperadminCredential) TableName() string { return "superadmins" }

// LoginResult carries an issued token back to the handler.
type LoginResult struct {
	Token            string    `json:"access_token"`
	ExpiresAt        time.Time `json:"expires_at"`
	Role             string    `json:"role"`
	AdminID          string    `json:"admin_id,omitempty"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Email            string    `json:"email,omitempty"`
}
