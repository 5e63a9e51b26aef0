// Package migration applies the database schema on startup.
package migration

import (
	authdomain "github.com/spiten/spiten/internal/auth/domain"
	"github.com/spiten/spiten/internal/metrics"
	orgdomain "github.com/spiten/spiten/internal/organization/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func autoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("applying database migrations")
	return db.AutoMigrate(
		&orgdomain.Organization{},
		&orgdomain.AdminCredential{},
		&authdomain.SuperadminCredential{},
		&metrics.Snapshot{},
	)
}

// Module runs schema migration before invocations that touch the tables.
var Module = fx.Module("migration",
	fx.Invoke(autoMigrate),
)
