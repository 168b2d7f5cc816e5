package core

import "errors"

// Common errors.
var (
	ErrNotFound     = errors.New("record not found")
	ErrExists       = errors.New("record already exists")
	ErrEmptyTitle   = errors.New("record title cannot be empty")
	ErrInvalidID    = errors.New("record id must be positive")
	ErrReadOnly     = errors.New("repository is in read-only mode")
	ErrNotWatchable = errors.New("repository does not support watching")
)
