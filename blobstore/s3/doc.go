// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Objects are downloaded whole via the S3 transfer manager; there is no
// range-read path because corpus inputs are fetched in one piece and
// memoized by blobstore.CachingStore.
package s3
