// Package metrics records usage snapshots of the credential store. Each
// call to Record appends one snapshot row; the table is a pure side-effect
// sink and nothing reads it back.
package metrics

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/spiten/spiten/internal/auth/domain"
	orgdomain "github.com/spiten/spiten/internal/organization/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Snapshot is one recorded usage sample.
type Snapshot struct {
	ID            snowflake.ID      `gorm:"primaryKey" json:"id"`
	Organizations int64             `gorm:"not null" json:"organizations"`
	Admins        int64             `gorm:"not null" json:"admins"`
	Superadmins   int64             `gorm:"not null" json:"superadmins"`
	Payload       datatypes.JSONMap `json:"payload"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Snapshot) TableName() string { return "usage_snapshots" }

// Counts is the snapshot view returned to callers.
type Counts struct {
	Organizations int64  `json:"organizations"`
	Admins        int64  `json:"admins"`
	Superadmins   int64  `json:"superadmins"`
	Timestamp     string `json:"timestamp"`
}

type Service struct {
	log     *zap.Logger
	db      *gorm.DB
	orgRepo orgdomain.Repository
	genID   *snowflake.Node
}

func NewService(log *zap.Logger, db *gorm.DB, orgRepo orgdomain.Repository, genID *snowflake.Node) *Service {
	return &Service{
		log:     log.Named("metrics.service"),
		db:      db,
		orgRepo: orgRepo,
		genID:   genID,
	}
}

// Record counts live records and appends a snapshot row.
func (s *Service) Record(ctx context.Context) (Counts, error) {
	orgs, err := s.orgRepo.CountOrganizations(ctx)
	if err != nil {
		return Counts{}, err
	}
	admins, err := s.orgRepo.CountAdmins(ctx)
	if err != nil {
		return Counts{}, err
	}

	var superadmins int64
	if err := s.db.WithContext(ctx).Model(&authdomain.SuperadminCredential{}).Count(&superadmins).Error; err != nil {
		return Counts{}, err
	}

	now := time.Now().UTC()
	counts := Counts{
		Organizations: orgs,
		Admins:        admins,
		Superadmins:   superadmins,
		Timestamp:     now.Format(time.RFC3339),
	}

	snapshot := Snapshot{
		ID:            s.genID.Generate(),
		Organizations: orgs,
		Admins:        admins,
		Superadmins:   superadmins,
		Payload: datatypes.JSONMap{
			"organizations": orgs,
			"admins":        admins,
			"superadmins":   superadmins,
			"timestamp":     counts.Timestamp,
		},
		CreatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&snapshot).Error; err != nil {
		return Counts{}, err
	}

	return counts, nil
}
