// Package cache provides the byte cache backing blobstore.CachingStore.
//
// Fetched corpus objects are memoized for the process lifetime; the LRU
// capacity exists only as a safety bound, not as an expiry policy.
package cache
