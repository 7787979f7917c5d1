package user

import "errors"

// Domain errors for user operations

var (
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name must not exceed 100 characters")
	ErrEmailInvalid       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must not exceed 128 characters")
	ErrPasswordHash       = errors.New("failed to hash password")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotApproved        = errors.New("account is awaiting approval")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrNotFound           = errors.New("user not found")
)
