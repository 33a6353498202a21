// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible storage endpoints.
package minio
