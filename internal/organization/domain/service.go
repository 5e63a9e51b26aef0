package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (*Organization, error)
	Get(ctx context.Context, name string) (*Organization, error)
	List(ctx context.Context) ([]Organization, error)
	Update(ctx context.Context, req UpdateOrganizationRequest) (*Organization, error)
	Delete(ctx context.Context, name string) error
	FindAdminByEmail(ctx context.Context, email string) (*AdminCredential, error)
	Counts(ctx context.Context) (Counts, error)
}

type CreateOrganizationRequest struct {
	Name     string
	Email    string
	Password string
}

// UpdateOrganizationRequest carries a partial update. Rename and password
// change are independent and both optional.
type UpdateOrganizationRequest struct {
	Name     string
	NewName  string
	Email    string
	Password string
}

type Counts struct {
	Organizations int64 `json:"organizations"`
	Admins        int64 `json:"admins"`
}

var (
	ErrOrganizationExists   = errors.New("organization already exists")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrInvalidName          = errors.New("invalid_organization_name")
	ErrInvalidEmail         = errors.New("invalid_email")
	ErrInvalidPassword      = errors.New("invalid_password")
)
