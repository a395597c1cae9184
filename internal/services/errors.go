package services

import "errors"

// Account errors.
var (
	ErrUsernameExists   = errors.New("username already exists")
	ErrEmailExists      = errors.New("email already exists")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrEmailTooLong     = errors.New("email is too long")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrAboutMeTooLong   = errors.New("about me is too long")
	ErrAccountNotFound  = errors.New("account not found")
	ErrUserNotFound     = errors.New("user not found")
)

// Authentication errors.
var (
	ErrUnauthenticated = errors.New("could not authenticate request")
	ErrInvalidCSRF     = errors.New("invalid csrf token")
)

// Skin ingestion errors.
var (
	ErrSkinMissing          = errors.New("skin file is missing")
	ErrSkinTooLarge         = errors.New("skin file is too large")
	ErrTitleTooLong         = errors.New("title is too long")
	ErrDescriptionTooLong   = errors.New("description is too long")
	ErrUnsupportedMediaType = errors.New("skin must be a png or jpeg")
	ErrInvalidDimensions    = errors.New("skin must be 64x64 or 64x32")
	ErrSkinExists           = errors.New("skin file already exists")
	ErrTitleExists          = errors.New("title already exists")
)

// Field bounds, counted in characters.
const (
	MaxUsernameLength    = 16
	MaxEmailLength       = 256
	MaxPasswordLength    = 256
	MaxAboutMeLength     = 256
	MaxTitleLength       = 16
	MaxDescriptionLength = 256

	// MaxSkinSize is the largest accepted skin file in bytes.
	MaxSkinSize = 5000
)
