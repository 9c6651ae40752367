package service

import "errors"

// Service errors.
var (
	ErrNoInitialState = errors.New("store needs an initial state")
	ErrNoStore        = errors.New("store is required")
	ErrNoUpdate       = errors.New("loop needs an update callback")
	ErrBadPeriod      = errors.New("period must be positive")
)
