package organization

import (
	"github.com/spiten/spiten/internal/organization/repository"
	"github.com/spiten/spiten/internal/organization/service"
	"go.uber.org/fx"
)

var Module = fx.Module("organization.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
