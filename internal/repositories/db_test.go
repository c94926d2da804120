package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase(t *testing.T) {
	ctx := context.Background()

	repos, db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NotNil(t, repos.Users)
	require.NotNil(t, repos.Snapshots)

	// migrated schema is usable straight away
	n, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repos.Snapshots.Set(ctx, "auth-storage", []byte("{}")))
	v, err := repos.Snapshots.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)
}
