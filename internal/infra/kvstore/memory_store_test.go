package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	type doc struct {
		Notes string   `json:"notes"`
		Tags  []string `json:"tags"`
	}
	in := doc{Notes: "calm skin today", Tags: []string{"sunny", "hydrated"}}

	require.NoError(t, SetJSON(ctx, store, "skin-notes-2026-03-01", in, 0))
	out, ok, err := GetJSON[doc](ctx, store, "skin-notes-2026-03-01")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, out)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()
	_, ok, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "ephemeral", []byte("x"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, ok, err := store.Get(ctx, "ephemeral")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreReplace(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "fyp_grocery_list", []byte("stale"), 0))

	err := store.Replace(ctx,
		map[string]Entry{"fyp_meal_plan": {Value: []byte("fresh")}},
		[]string{"fyp_grocery_list"},
	)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "fyp_grocery_list")
	require.NoError(t, err)
	require.False(t, ok)

	plan, ok, err := store.Get(ctx, "fyp_meal_plan")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("fresh"), plan)
}

func TestGetJSONCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "broken", []byte("{not json"), 0))
	_, _, err := GetJSON[map[string]string](ctx, store, "broken")
	require.Error(t, err)
}
