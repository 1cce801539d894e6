package types

import "errors"

// Store lifecycle and operation errors.
var (
	ErrStoreClosed  = errors.New("store is closed")
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Data-access errors surfaced to callers.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrInvalidKind    = errors.New("invalid trace kind")
)
