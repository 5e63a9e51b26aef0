package domain

import (
	"context"

	"github.com/spiten/spiten/internal/auth/token"
)

type Service interface {
	AdminLogin(ctx context.Context, req LoginRequest) (*LoginResult, error)
	SuperadminLogin(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Authenticate(ctx context.Context, rawToken string) (*token.Claims, error)
	EnsureSuperadmin(ctx context.Context) error
}

type LoginRequest struct {
	Email    string
	Password string
}
