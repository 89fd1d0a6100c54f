package base

import "fmt"

// InvalidNumberError reports a token that fails character validation for
// its claimed base.
type InvalidNumberError struct {
	Base Base
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("Invalid %s number", e.Base.Name())
}

// InvalidBaseError reports a base flag outside the supported set.
type InvalidBaseError struct {
	Flag string
}

func (e *InvalidBaseError) Error() string {
	return "Invalid base type flag, only 'b', 'o', 'd' or 'x'"
}

// UnsupportedTargetError reports a conversion target outside the
// supported set.
type UnsupportedTargetError struct {
	Target Base
}

func (e *UnsupportedTargetError) Error() string {
	return "No such base conversion type"
}
