package domain

import "errors"

var (
	ErrUnknownActivityCode = errors.New("unknown activity code")
	ErrArityMismatch       = errors.New("wrong number of values for activity")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrPackageNotFound     = errors.New("package not found")
)
