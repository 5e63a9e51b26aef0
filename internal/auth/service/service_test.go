package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/spiten/spiten/internal/auth/domain"
	"github.com/spiten/spiten/internal/auth/repository"
	"github.com/spiten/spiten/internal/auth/token"
	orgdomain "github.com/spiten/spiten/internal/organization/domain"
	orgrepository "github.com/spiten/spiten/internal/organization/repository"
	orgservice "github.com/spiten/spiten/internal/organization/service"
	"github.com/spiten/spiten/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServices(t *testing.T) (authdomain.Service, orgdomain.Service) {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&orgdomain.Organization{},
		&orgdomain.AdminCredential{},
		&authdomain.SuperadminCredential{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	orgRepo := orgrepository.NewRepository(dbConn)
	orgSvc := orgservice.NewService(zap.NewNop(), dbConn, orgRepo, node)
	issuer := token.NewIssuer("test-secret", "spiten", 30*time.Minute)
	authSvc := New(zap.NewNop(), orgRepo, repository.New(dbConn), issuer, node)

	return authSvc, orgSvc
}

func TestAdminLogin(t *testing.T) {
	authSvc, orgSvc := newTestServices(t)
	ctx := context.Background()

	_, err := orgSvc.Create(ctx, orgdomain.CreateOrganizationRequest{
		Name:     "testorg",
		Email:    "test@testorg.com",
		Password: "TestPass123!",
	})
	require.NoError(t, err)

	result, err := authSvc.AdminLogin(ctx, authdomain.LoginRequest{
		Email:    "test@testorg.com",
		Password: "TestPass123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "testorg", result.OrganizationName)

	claims, err := authSvc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, token.RoleAdmin, claims.Role)
	assert.Equal(t, "testorg", claims.OrganizationName)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	authSvc, orgSvc := newTestServices(t)
	ctx := context.Background()

	_, err := orgSvc.Create(ctx, orgdomain.CreateOrganizationRequest{
		Name:     "testorg",
		Email:    "test@testorg.com",
		Password: "correct-password",
	})
	require.NoError(t, err)

	_, err = authSvc.AdminLogin(ctx, authdomain.LoginRequest{
		Email:    "test@testorg.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	authSvc, _ := newTestServices(t)

	_, err := authSvc.AdminLogin(context.Background(), authdomain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestEnsureSuperadminBootstrap(t *testing.T) {
	authSvc, _ := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, authSvc.EnsureSuperadmin(ctx))
	// Idempotent: running again must not create a second record.
	require.NoError(t, authSvc.EnsureSuperadmin(ctx))

	result, err := authSvc.SuperadminLogin(ctx, authdomain.LoginRequest{
		Email:    DefaultSuperadminEmail,
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, token.RoleSuperadmin, result.Role)

	claims, err := authSvc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, token.RoleSuperadmin, claims.Role)
}

func TestSuperadminLoginWrongPassword(t *testing.T) {
	authSvc, _ := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, authSvc.EnsureSuperadmin(ctx))

	_, err := authSvc.SuperadminLogin(ctx, authdomain.LoginRequest{
		Email:    DefaultSuperadminEmail,
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}
