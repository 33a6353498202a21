package cache

import "context"

// Key identifies one fetched object. Store disambiguates between multiple
// backends sharing one cache (e.g. an endpoint/bucket/prefix string).
type Key struct {
	Store string
	Name  string
}

// ByteCache is a byte-oriented cache for immutable fetched objects.
// Returned slices must be treated as read-only.
type ByteCache interface {
	// Get returns a cached object. ok=false if missing.
	Get(ctx context.Context, key Key) (b []byte, ok bool)
	// Set caches an object. Caller must treat b as immutable afterwards.
	Set(ctx context.Context, key Key, b []byte)
}
