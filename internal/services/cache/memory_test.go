package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(1)
	defer mc.Stop()

	_, ok := mc.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, mc.Set(ctx, "a", []byte("one"), time.Minute))
	got, ok := mc.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, []byte("one"), got)
	assert.True(t, mc.Has(ctx, "a"))

	require.NoError(t, mc.Set(ctx, "a", []byte("two"), time.Minute))
	got, _ = mc.Get(ctx, "a")
	assert.Equal(t, []byte("two"), got)

	stats := mc.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(2), stats.Sets)
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(len("a")+len("two")), stats.Size)

	require.NoError(t, mc.Delete(ctx, "a"))
	assert.False(t, mc.Has(ctx, "a"))
	assert.Equal(t, int64(0), mc.Stats().Size)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(1)
	defer mc.Stop()

	now := time.Now()
	mc.now = func() time.Time { return now }

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), time.Second))
	assert.True(t, mc.Has(ctx, "k"))

	now = now.Add(2 * time.Second)
	assert.False(t, mc.Has(ctx, "k"))
	_, ok := mc.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, int64(1), mc.Stats().Evictions)
}

func TestMemoryCache_EvictsSoonestExpiry(t *testing.T) {
	ctx := context.Background()
	mc := newMemoryCache(20, time.Hour)
	defer mc.Stop()

	require.NoError(t, mc.Set(ctx, "short", []byte("123456789"), time.Minute))
	require.NoError(t, mc.Set(ctx, "long", []byte("12345678"), time.Hour))
	require.NoError(t, mc.Set(ctx, "new", []byte("1234"), time.Hour))

	assert.False(t, mc.Has(ctx, "short"))
	assert.True(t, mc.Has(ctx, "long"))
	assert.True(t, mc.Has(ctx, "new"))
	assert.LessOrEqual(t, mc.Stats().Size, int64(20))
}

func TestMemoryCache_ClearAndStop(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(0)

	require.NoError(t, mc.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, mc.Clear(ctx))
	assert.Equal(t, 0, mc.Stats().Entries)

	mc.Stop()
	mc.Stop()
}

func TestRenderKey(t *testing.T) {
	assert.Equal(t, "render:abc:offsets:2-7-99", RenderKey("abc", "offsets", "2-7-99"))
}
