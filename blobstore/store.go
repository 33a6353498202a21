package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for fetching immutable data blobs.
//
// Corpus inputs are small enough to read whole; there is no streaming or
// range-read path.
type BlobStore interface {
	// Fetch reads the entire blob.
	Fetch(ctx context.Context, name string) ([]byte, error)
	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Identifier is implemented by stores that can name their backend.
//
// StoreID must distinguish two stores holding different data: endpoint,
// bucket and prefix all belong in it (e.g. "s3://bucket/prefix"). Cache
// layers use it to key entries when one cache is shared across stores.
type Identifier interface {
	StoreID() string
}
