package auth

import (
	"github.com/spiten/spiten/internal/auth/repository"
	"github.com/spiten/spiten/internal/auth/service"
	"github.com/spiten/spiten/internal/auth/token"
	"github.com/spiten/spiten/internal/config"
	"go.uber.org/fx"
)

func newIssuer(cfg config.Config) *token.Issuer {
	return token.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiresIn)
}

var Module = fx.Module("auth.service",
	fx.Provide(newIssuer),
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
