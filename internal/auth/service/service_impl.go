package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spiten/spiten/internal/auth/domain"
	"github.com/spiten/spiten/internal/auth/password"
	"github.com/spiten/spiten/internal/auth/token"
	orgdomain "github.com/spiten/spiten/internal/organization/domain"
	"go.uber.org/zap"
)

// Default bootstrap credential. A documented weakness carried over from the
// original deployment; rotate it immediately in any real installation.
const (
	DefaultSuperadminEmail    = "admin@spiten.com"
	defaultSuperadminPassword = "admin123"
)

type Service struct {
	log     *zap.Logger
	orgRepo orgdomain.Repository
	repo    domain.Repository
	tokens  *token.Issuer
	genID   *snowflake.Node
}

func New(log *zap.Logger, orgRepo orgdomain.Repository, repo domain.Repository, tokens *token.Issuer, genID *snowflake.Node) domain.Service {
	return &Service{
		log:     log.Named("auth.service"),
		orgRepo: orgRepo,
		repo:    repo,
		tokens:  tokens,
		genID:   genID,
	}
}

// AdminLogin verifies an organization admin credential and issues a token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) AdminLogin(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.orgRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, orgdomain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(req.Password, admin.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, expiresAt, err := s.tokens.Issue(token.Claims{
		AdminID:          admin.ID.String(),
		OrganizationName: admin.OrganizationName,
		Role:             token.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		Token:            signed,
		ExpiresAt:        expiresAt,
		Role:             token.RoleAdmin,
		AdminID:          admin.ID.String(),
		OrganizationName: admin.OrganizationName,
	}, nil
}

// SuperadminLogin verifies a superadmin credential and issues a token with
// the superadmin role claim.
func (s *Service) SuperadminLogin(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrSuperadminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(req.Password, cred.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, expiresAt, err := s.tokens.Issue(token.Claims{
		AdminID: cred.ID.String(),
		Role:    token.RoleSuperadmin,
	})
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		Token:     signed,
		ExpiresAt: expiresAt,
		Role:      token.RoleSuperadmin,
		AdminID:   cred.ID.String(),
		Email:     cred.Email,
	}, nil
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*token.Claims, error) {
	_ = ctx
	return s.tokens.Parse(rawToken)
}

// EnsureSuperadmin creates the bootstrap superadmin when none exists.
func (s *Service) EnsureSuperadmin(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash(defaultSuperadminPassword)
	if err != nil {
		return err
	}

	cred := &domain.SuperadminCredential{
		ID:           s.genID.Generate(),
		Email:        DefaultSuperadminEmail,
		PasswordHash: hashed,
		Role:         token.RoleSuperadmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, cred); err != nil {
		return err
	}

	s.log.Warn("created default superadmin credential; rotate it before exposing this instance",
		zap.String("email", DefaultSuperadminEmail))
	return nil
}
