package services

import "errors"

var (
	// ErrLimitExceeded means a tenant plan limit (users, templates,
	// storage) blocks the write.
	ErrLimitExceeded = errors.New("tenant plan limit exceeded")
	// ErrInvalidCredentials covers unknown email and wrong password
	// equally, so login failures do not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks input failures so handlers can map them to 400
// without mistaking storage failures for bad input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error {
	return &ValidationError{Msg: msg}
}

var (
	errPasswordTooShort = validationErr("password must be at least 8 characters")
	errUnknownPlan      = validationErr("unknown plan tier")
)
