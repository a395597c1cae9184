package models

import "errors"

// Store-level uniqueness errors. Repositories return them when a unique index
// rejects a write, so callers see the same error whether the pre-check or the
// index caught the duplicate.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateSession  = errors.New("session already exists")
	ErrDuplicateSkinHash = errors.New("skin hash already exists")
	ErrDuplicateTitle    = errors.New("skin title already exists")
)
