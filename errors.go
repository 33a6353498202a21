package sisapp

import "errors"

var (
	// ErrNoStore is returned by Open when the source has no blob store.
	ErrNoStore = errors.New("source store is required")

	// ErrNoAnnotationsKey is returned by Open when the annotations object
	// name is empty.
	ErrNoAnnotationsKey = errors.New("annotations key is required")
)
