package domain

import "context"

type Repository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, cred *SuperadminCredential) error
	FindByEmail(ctx context.Context, email string) (*SuperadminCredential, error)
}
