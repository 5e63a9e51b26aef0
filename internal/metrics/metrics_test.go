package metrics

import (
	"context"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/spiten/spiten/internal/auth/domain"
	orgdomain "github.com/spiten/spiten/internal/organization/domain"
	orgrepository "github.com/spiten/spiten/internal/organization/repository"
	orgservice "github.com/spiten/spiten/internal/organization/service"
	"github.com/spiten/spiten/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/schema"
)

// The payload column must not pin a concrete SQL type: JSONMap picks
// JSON or JSONB per dialect, and a hard-coded jsonb breaks MySQL DDL.
func TestSnapshotPayloadHasNoExplicitColumnType(t *testing.T) {
	parsed, err := schema.Parse(&Snapshot{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := parsed.LookUpField("Payload")
	require.NotNil(t, field)
	assert.Empty(t, field.TagSettings["TYPE"])
}

func TestRecordAppendsSnapshot(t *testing.T) {
	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&orgdomain.Organization{},
		&orgdomain.AdminCredential{},
		&authdomain.SuperadminCredential{},
		&Snapshot{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	orgRepo := orgrepository.NewRepository(dbConn)
	orgSvc := orgservice.NewService(zap.NewNop(), dbConn, orgRepo, node)
	svc := NewService(zap.NewNop(), dbConn, orgRepo, node)

	ctx := context.Background()
	_, err = orgSvc.Create(ctx, orgdomain.CreateOrganizationRequest{
		Name: "acme", Email: "a@acme.com", Password: "secret",
	})
	require.NoError(t, err)

	counts, err := svc.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Organizations)
	assert.Equal(t, int64(1), counts.Admins)
	assert.Equal(t, int64(0), counts.Superadmins)
	assert.NotEmpty(t, counts.Timestamp)

	var rows int64
	require.NoError(t, dbConn.Model(&Snapshot{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	_, err = svc.Record(ctx)
	require.NoError(t, err)
	require.NoError(t, dbConn.Model(&Snapshot{}).Count(&rows).Error)
	assert.Equal(t, int64(2), rows)
}
