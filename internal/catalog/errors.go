package catalog

import "errors"

var (
	ErrNotFound     = errors.New("tool not found")
	ErrInvalidInput = errors.New("invalid input")
)
