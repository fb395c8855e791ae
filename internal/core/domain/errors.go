package domain

import "errors"

// Sentinel errors returned by use cases. Adapters map them to transport
// status codes.
var (
	ErrValidation         = errors.New("validation failed")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid jwt token")
	ErrForbidden          = errors.New("operation not allowed")
	ErrUserSuspended      = errors.New("account is suspended")
	ErrTrialExpired       = errors.New("trial period has expired")
)
