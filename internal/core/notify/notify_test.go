package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := store.Save(ctx, Notification{Level: LevelInfo, Message: msg})
		require.NoError(t, err)
	}

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Message)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, "first", got[2].Message)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestMemoryStore_Limit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(2)

	for i := range 5 {
		_, err := store.Save(ctx, Notification{Message: fmt.Sprintf("n%d", i)})
		require.NoError(t, err)
	}

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "n4", got[0].Message)
	assert.Equal(t, "n3", got[1].Message)
	assert.Equal(t, int64(5), got[0].ID, "ids keep increasing after eviction")
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)
	_, err := store.Save(ctx, Notification{Message: "x"})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
