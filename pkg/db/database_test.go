package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
)

func TestOpen_EmptyDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "")
	require.Error(t, err)
}

func TestOpen_SqliteAndMigrate(t *testing.T) {
	t.Parallel()

	conn, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(conn))
	// running migrations again must be a no-op
	require.NoError(t, Migrate(conn))

	assert.True(t, conn.Migrator().HasTable(&models.MenuItem{}))
	assert.True(t, conn.Migrator().HasTable(&models.Order{}))
	assert.True(t, conn.Migrator().HasTable(&models.OrderLine{}))
}
