package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memecoin-agent/internal/store"
)

func TestPendingRoundTrip(t *testing.T) {
	pending := NewPendingStore(store.NewMemoryStore())
	ctx := context.Background()

	_, ok, err := pending.Get(ctx, "tg_1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, pending.Propose(ctx, "tg_1", "doge to the moon"))

	got, ok, err := pending.Get(ctx, "tg_1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "doge to the moon", got.Prompt)
	assert.False(t, got.CreatedAt.IsZero())
}

// Новый промпт молча вытесняет неразрешенный старый.
func TestPendingSupersede(t *testing.T) {
	pending := NewPendingStore(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, pending.Propose(ctx, "tg_1", "first prompt"))
	require.NoError(t, pending.Propose(ctx, "tg_1", "second prompt"))

	got, ok, err := pending.Get(ctx, "tg_1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second prompt", got.Prompt)
}

// Записи разных разговоров независимы.
func TestPendingIsolatedPerConversation(t *testing.T) {
	pending := NewPendingStore(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, pending.Propose(ctx, "tg_1", "prompt one"))

	_, ok, err := pending.Get(ctx, "tg_2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPendingClearIsIdempotent(t *testing.T) {
	pending := NewPendingStore(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, pending.Propose(ctx, "tg_1", "doge"))
	require.NoError(t, pending.Clear(ctx, "tg_1"))
	require.NoError(t, pending.Clear(ctx, "tg_1"))

	_, ok, err := pending.Get(ctx, "tg_1")
	require.NoError(t, err)
	assert.False(t, ok)
}
