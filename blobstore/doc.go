// Package blobstore provides read access to the remote objects a corpus is
// loaded from.
//
// BlobStore is the interface for fetching whole data blobs (annotation
// dumps, frequency tables). Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem directory
//   - MemoryStore: in-memory map, mainly for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible endpoints
//
// # Caching
//
// Wrap any store in a CachingStore to memoize fetches for the process
// lifetime: repeat fetches of the same object never re-hit the backend.
//
// # Compression
//
// Objects named with a ".gz", ".zst" or ".lz4" suffix are transparently
// decompressed by Decompress; stores themselves return raw bytes.
package blobstore
