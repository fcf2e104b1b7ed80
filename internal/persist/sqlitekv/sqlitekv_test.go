package sqlitekv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ltask.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_GetMissingKey(t *testing.T) {
	s, _ := openTestStore(t)

	v, ok, err := s.Get(context.Background(), "tasks")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	require.NoError(t, s.Set(ctx, "tasks", "[]"))
	require.NoError(t, s.Set(ctx, "tasks", `[{"text":"a"}]`))

	v, ok, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"a"}]`, v)

	var count int64
	require.NoError(t, s.db.Model(&Entry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTestStore(t)
	require.NoError(t, s.Set(ctx, "tasks", `[{"text":"keep"}]`))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"keep"}]`, v)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	require.NoError(t, s.Set(ctx, "tasks", "a"))
	require.NoError(t, s.Set(ctx, "archive", "b"))

	v, _, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}
