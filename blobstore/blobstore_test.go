package blobstore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mozgsvina/sis-app/blobstore"
	"github.com/mozgsvina/sis-app/internal/cache"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, store.Put(ctx, "corpus/tumanova.jsonl", []byte("line1")))
	require.NoError(t, store.Put(ctx, "corpus/frequencies.csv", []byte("a,b,c")))
	require.NoError(t, store.Put(ctx, "other.txt", []byte("x")))

	data, err := store.Fetch(ctx, "corpus/tumanova.jsonl")
	require.NoError(t, err)
	require.Equal(t, []byte("line1"), data)

	// The returned slice is a copy.
	data[0] = 'X'
	again, err := store.Fetch(ctx, "corpus/tumanova.jsonl")
	require.NoError(t, err)
	require.Equal(t, []byte("line1"), again)

	_, err = store.Fetch(ctx, "missing")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	names, err := store.List(ctx, "corpus/")
	require.NoError(t, err)
	require.Equal(t, []string{"corpus/frequencies.csv", "corpus/tumanova.jsonl"}, names)
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "corpus"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corpus", "a.jsonl"), []byte("aa"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("bb"), 0o644))

	store := blobstore.NewLocalStore(dir)

	data, err := store.Fetch(ctx, "corpus/a.jsonl")
	require.NoError(t, err)
	require.Equal(t, []byte("aa"), data)

	_, err = store.Fetch(ctx, "nope.jsonl")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"b.csv", "corpus/a.jsonl"}, names)

	names, err = store.List(ctx, "corpus/")
	require.NoError(t, err)
	require.Equal(t, []string{"corpus/a.jsonl"}, names)
}

// countingStore counts Fetch calls to observe memoization.
type countingStore struct {
	inner   blobstore.BlobStore
	mu      sync.Mutex
	fetches map[string]int
}

func newCountingStore(inner blobstore.BlobStore) *countingStore {
	return &countingStore{inner: inner, fetches: make(map[string]int)}
}

func (s *countingStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	s.fetches[name]++
	s.mu.Unlock()
	return s.inner.Fetch(ctx, name)
}

func (s *countingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func (s *countingStore) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches[name]
}

func TestCachingStore(t *testing.T) {
	ctx := context.Background()

	mem := blobstore.NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "tumanova.jsonl", []byte("payload")))

	counting := newCountingStore(mem)
	store := blobstore.NewCachingStore(counting, cache.NewLRU(1<<20), "mem")

	for i := 0; i < 3; i++ {
		data, err := store.Fetch(ctx, "tumanova.jsonl")
		require.NoError(t, err)
		require.Equal(t, []byte("payload"), data)
	}
	require.Equal(t, 1, counting.count("tumanova.jsonl"))

	// Errors are not cached.
	_, err := store.Fetch(ctx, "missing")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
	_, err = store.Fetch(ctx, "missing")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
	require.Equal(t, 2, counting.count("missing"))
}

func TestStoreIDs(t *testing.T) {
	require.Equal(t, "file:///data/corpus", blobstore.NewLocalStore("/data/corpus").StoreID())

	// Memory stores never share data, so each instance gets its own ID.
	a := blobstore.NewMemoryStore()
	b := blobstore.NewMemoryStore()
	require.NotEqual(t, a.StoreID(), b.StoreID())
}

func TestCachingStore_DistinctStoreIDs(t *testing.T) {
	ctx := context.Background()
	shared := cache.NewLRU(1 << 20)

	memA := blobstore.NewMemoryStore()
	require.NoError(t, memA.Put(ctx, "blob", []byte("from-a")))
	memB := blobstore.NewMemoryStore()
	require.NoError(t, memB.Put(ctx, "blob", []byte("from-b")))

	storeA := blobstore.NewCachingStore(memA, shared, "a")
	storeB := blobstore.NewCachingStore(memB, shared, "b")

	dataA, err := storeA.Fetch(ctx, "blob")
	require.NoError(t, err)
	dataB, err := storeB.Fetch(ctx, "blob")
	require.NoError(t, err)

	require.Equal(t, []byte("from-a"), dataA)
	require.Equal(t, []byte("from-b"), dataB)
}
