package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrActiveLoan         = errors.New("user still has a borrowed book")
)

// Book / loan errors
var (
	ErrBookNotFound = errors.New("book not found")
	ErrOutOfStock   = errors.New("book out of stock")
	ErrLoanNotFound = errors.New("no matching borrow record")
)
