package profiles

import "errors"

var (
	ErrNotFound     = errors.New("saved profile not found")
	ErrInvalidInput = errors.New("invalid input")
)
