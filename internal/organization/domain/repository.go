package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateOrganization(ctx context.Context, org *Organization) error
	FindOrganizationByName(ctx context.Context, name string) (*Organization, error)
	ListOrganizations(ctx context.Context) ([]Organization, error)
	UpdateOrganization(ctx context.Context, name string, fields map[string]any) error
	DeleteOrganization(ctx context.Context, name string) (int64, error)

	CreateAdmin(ctx context.Context, admin *AdminCredential) error
	FindAdminByEmail(ctx context.Context, email string) (*AdminCredential, error)
	UpdateAdminsByOrganization(ctx context.Context, name string, fields map[string]any) error
	DeleteAdminsByOrganization(ctx context.Context, name string) error

	CountOrganizations(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
}
