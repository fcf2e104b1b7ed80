package memkv

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltask/internal/persist"
)

func TestStore_GetMissing(t *testing.T) {
	s := New(0)

	v, ok, err := s.Get(context.Background(), "tasks")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_SetThenGet(t *testing.T) {
	ctx := context.Background()
	s := New(0)

	require.NoError(t, s.Set(ctx, "tasks", "[]"))
	require.NoError(t, s.Set(ctx, "tasks", `[{"text":"a"}]`))

	v, ok, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"text":"a"}]`, v)
	assert.Equal(t, 1, s.Len())
}

func TestStore_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	s := New(10)

	require.NoError(t, s.Set(ctx, "other", "12345"))
	err := s.Set(ctx, "tasks", strings.Repeat("x", 6))

	require.ErrorIs(t, err, persist.ErrQuotaExceeded)
	_, ok, _ := s.Get(ctx, "tasks")
	assert.False(t, ok, "rejected write must not be stored")
}

func TestStore_QuotaCountsReplacedValueOnce(t *testing.T) {
	ctx := context.Background()
	s := New(10)

	require.NoError(t, s.Set(ctx, "tasks", strings.Repeat("x", 10)))
	assert.NoError(t, s.Set(ctx, "tasks", strings.Repeat("y", 10)))
}
