package errors

import "errors"

var (
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrInvalidLifecycle = errors.New("finalized before initialized")
	ErrRenderFailed     = errors.New("report rendering failed")
)
