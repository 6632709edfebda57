package kv

import "errors"

// ErrNotFound is returned when a key does not exist or has expired.
var ErrNotFound = errors.New("key not found")
