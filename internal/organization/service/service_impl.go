package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spiten/spiten/internal/auth/password"
	"github.com/spiten/spiten/internal/organization/domain"
	"github.com/spiten/spiten/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	log   *zap.Logger
	db    *gorm.DB
	repo  domain.Repository
	genID *snowflake.Node
}

func NewService(log *zap.Logger, dbConn *gorm.DB, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &Service{
		log:   log.Named("organization.service"),
		db:    dbConn,
		repo:  repo,
		genID: genID,
	}
}

// Create inserts the organization together with its first admin credential.
// Both writes share one transaction so a crash cannot leave an organization
// without a credential.
func (s *Service) Create(ctx context.Context, req domain.CreateOrganizationRequest) (*domain.Organization, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if email == "" {
		return nil, domain.ErrInvalidEmail
	}
	if req.Password == "" {
		return nil, domain.ErrInvalidPassword
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	org := &domain.Organization{
		ID:             s.genID.Generate(),
		Name:           name,
		Email:          email,
		CollectionName: domain.CollectionNameFor(name),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	admin := &domain.AdminCredential{
		ID:               s.genID.Generate(),
		OrganizationName: name,
		Email:            email,
		PasswordHash:     hashed,
		CreatedAt:        now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindOrganizationByName(ctx, name); err == nil {
			return domain.ErrOrganizationExists
		} else if !errors.Is(err, domain.ErrOrganizationNotFound) {
			return err
		}
		if err := repo.CreateOrganization(ctx, org); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrOrganizationExists
			}
			return err
		}
		return repo.CreateAdmin(ctx, admin)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("organization created", zap.String("organization", name))
	return org, nil
}

func (s *Service) Get(ctx context.Context, name string) (*domain.Organization, error) {
	return s.repo.FindOrganizationByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]domain.Organization, error) {
	return s.repo.ListOrganizations(ctx)
}

// Update applies a partial update. A password change re-hashes and cascades
// to the admin credentials; a rename cascades the new name and regenerated
// collection identifier. The organization update and both cascades run in
// one transaction.
func (s *Service) Update(ctx context.Context, req domain.UpdateOrganizationRequest) (*domain.Organization, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	var updated *domain.Organization
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindOrganizationByName(ctx, name); err != nil {
			return err
		}

		now := time.Now().UTC()
		fields := map[string]any{"updated_at": now}

		if email := strings.TrimSpace(req.Email); email != "" {
			fields["email"] = email
		}
		if req.Password != "" {
			hashed, err := password.Hash(req.Password)
			if err != nil {
				return err
			}
			if err := repo.UpdateAdminsByOrganization(ctx, name, map[string]any{
				"password_hash": hashed,
			}); err != nil {
				return err
			}
		}

		currentName := name
		if newName := strings.TrimSpace(req.NewName); newName != "" && newName != name {
			fields["name"] = newName
			fields["collection_name"] = domain.CollectionNameFor(newName)
			if err := repo.UpdateAdminsByOrganization(ctx, name, map[string]any{
				"organization_name": newName,
			}); err != nil {
				return err
			}
			currentName = newName
		}

		if err := repo.UpdateOrganization(ctx, name, fields); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrOrganizationExists
			}
			return err
		}

		org, err := repo.FindOrganizationByName(ctx, currentName)
		if err != nil {
			return err
		}
		updated = org
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the organization and all of its admin credentials.
func (s *Service) Delete(ctx context.Context, name string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		deleted, err := repo.DeleteOrganization(ctx, name)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return domain.ErrOrganizationNotFound
		}
		return repo.DeleteAdminsByOrganization(ctx, name)
	})
	if err != nil {
		return err
	}

	s.log.Info("organization deleted", zap.String("organization", name))
	return nil
}

func (s *Service) FindAdminByEmail(ctx context.Context, email string) (*domain.AdminCredential, error) {
	return s.repo.FindAdminByEmail(ctx, email)
}

func (s *Service) Counts(ctx context.Context) (domain.Counts, error) {
	orgs, err := s.repo.CountOrganizations(ctx)
	if err != nil {
		return domain.Counts{}, err
	}
	admins, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return domain.Counts{}, err
	}
	return domain.Counts{Organizations: orgs, Admins: admins}, nil
}
