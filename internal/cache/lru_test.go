package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRU_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(1 << 10)

	k := Key{Store: "s3://bucket", Name: "tumanova.jsonl"}
	_, ok := c.Get(ctx, k)
	require.False(t, ok)

	c.Set(ctx, k, []byte("data"))
	got, ok := c.Get(ctx, k)
	require.True(t, ok)
	require.Equal(t, []byte("data"), got)
	require.Equal(t, int64(4), c.Size())

	hits, misses := c.Stats()
	require.Equal(t, int64(1), hits)
	require.Equal(t, int64(1), misses)
}

func TestLRU_Eviction(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(10)

	c.Set(ctx, Key{Name: "a"}, []byte("aaaa"))
	c.Set(ctx, Key{Name: "b"}, []byte("bbbb"))

	// Touch a so that b is the eviction candidate.
	_, ok := c.Get(ctx, Key{Name: "a"})
	require.True(t, ok)

	c.Set(ctx, Key{Name: "c"}, []byte("cccc"))

	_, ok = c.Get(ctx, Key{Name: "a"})
	require.True(t, ok)
	_, ok = c.Get(ctx, Key{Name: "b"})
	require.False(t, ok)
	_, ok = c.Get(ctx, Key{Name: "c"})
	require.True(t, ok)
	require.LessOrEqual(t, c.Size(), int64(10))
}

func TestLRU_Oversized(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(4)

	c.Set(ctx, Key{Name: "big"}, []byte("too large"))
	_, ok := c.Get(ctx, Key{Name: "big"})
	require.False(t, ok)
	require.Zero(t, c.Size())
}

func TestLRU_Replace(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(1 << 10)

	k := Key{Name: "k"}
	c.Set(ctx, k, []byte("old"))
	c.Set(ctx, k, []byte("newer"))

	got, ok := c.Get(ctx, k)
	require.True(t, ok)
	require.Equal(t, []byte("newer"), got)
	require.Equal(t, int64(5), c.Size())
}
