package seed

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	orgdomain "github.com/spiten/spiten/internal/organization/domain"
	orgrepository "github.com/spiten/spiten/internal/organization/repository"
	orgservice "github.com/spiten/spiten/internal/organization/service"
	"github.com/spiten/spiten/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOrgService(t *testing.T) orgdomain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&orgdomain.Organization{}, &orgdomain.AdminCredential{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return orgservice.NewService(zap.NewNop(), dbConn, orgrepository.NewRepository(dbConn), node)
}

func TestDemoDataSeedsAll(t *testing.T) {
	svc := newTestOrgService(t)

	result, err := DemoData(context.Background(), svc)
	require.NoError(t, err)
	assert.Len(t, result.Created, 5)
	assert.Empty(t, result.Skipped)

	orgs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, orgs, 5)
}

func TestDemoDataSkipsExisting(t *testing.T) {
	svc := newTestOrgService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, orgdomain.CreateOrganizationRequest{
		Name:     "acme-corp",
		Email:    "already@acme-corp.com",
		Password: "existing",
	})
	require.NoError(t, err)

	result, err := DemoData(ctx, svc)
	require.NoError(t, err)
	assert.Len(t, result.Created, 4)
	assert.Equal(t, []string{"acme-corp"}, result.Skipped)

	// Seeding again skips everything.
	result, err = DemoData(ctx, svc)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Len(t, result.Skipped, 5)
}
