package blobstore

import (
	"context"

	"github.com/mozgsvina/sis-app/internal/cache"
)

// CachingStore wraps a BlobStore and memoizes whole-object fetches.
//
// The cache key is (storeID, name); two CachingStores sharing one ByteCache
// must use distinct store IDs. Corpus blobs are immutable, so entries are
// never invalidated before process exit.
type CachingStore struct {
	inner   BlobStore
	cache   cache.ByteCache
	storeID string
}

// NewCachingStore creates a new CachingStore. storeID should identify the
// backend (e.g. "s3://bucket/prefix") so caches can be shared safely.
func NewCachingStore(inner BlobStore, c cache.ByteCache, storeID string) *CachingStore {
	return &CachingStore{
		inner:   inner,
		cache:   c,
		storeID: storeID,
	}
}

// Fetch returns the cached object when present and reads through otherwise.
func (s *CachingStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := cache.Key{Store: s.storeID, Name: name}

	if data, ok := s.cache.Get(ctx, key); ok {
		return data, nil
	}

	data, err := s.inner.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, data)
	return data, nil
}

// List passes through to the backing store; listings are not memoized.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
