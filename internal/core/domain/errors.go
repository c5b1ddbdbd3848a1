package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("credentials incorrect")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access to resource denied")
	ErrUserNotFound       = errors.New("user not found")
	ErrBookmarkNotFound   = errors.New("bookmark not found")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInternal           = errors.New("internal server error")
)
