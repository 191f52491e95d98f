package lisp

import "errors"

// UnboundError is returned when an identifier has no binding in any frame of
// the environment it is resolved against.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return "unbound identifier: " + e.Name
}

// IsUnbound returns true if err or any error it wraps is an *UnboundError.
func IsUnbound(err error) bool {
	var uerr *UnboundError
	return errors.As(err, &uerr)
}
