package compiler

import "fmt"

// Error reports a problem in the compiled source. It is recoverable: the
// driver records it and carries on with the rest of the unit.
type Error struct {
	Message  string
	Location Location
}

func NewError(location Location, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Location: location}
}

func (e *Error) Error() string {
	if !e.Location.IsKnown() {
		return e.Message
	}
	return e.Location.String() + ": " + e.Message
}

// InternalError reports a violated invariant inside the compiler itself, as
// opposed to a problem with the compiled source. It is raised as a panic and
// only ever caught at the driver boundary.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

// Internalf panics with an InternalError.
func Internalf(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}
