package internal

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNoSession          = errors.New("no session")
	ErrRoleMismatch       = errors.New("token role does not match requested role")

	ErrLoginIsAlreadyTaken = errors.New("login is already taken")
	ErrSignUpNotAcceptable = errors.New("phone number or password is not acceptable")

	ErrForbiddenRole     = errors.New("role cannot change order status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrStaleRefresh      = errors.New("refresh superseded by a newer one")

	ErrTooManyRequests = errors.New("too many requests")
	ErrRejected        = errors.New("rejected by backend")
	ErrNoRecords       = errors.New("no records")
)
