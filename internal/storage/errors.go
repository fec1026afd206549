package storage

import "errors"

// Sentinel errors returned by the store.
var (
	ErrNotFound          = errors.New("notebook not found")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
