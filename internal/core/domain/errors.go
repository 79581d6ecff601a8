package domain

import "errors"

var (
	ErrMissingFields      = errors.New("please fill in all fields")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("you cannot edit this user")
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrOfferingNotFound   = errors.New("service not found")
	ErrContractNotFound   = errors.New("contract not found")
)
