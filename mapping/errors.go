package mapping

import "errors"

var (
	// ErrNoMethod is returned by Invoke when an element has no exported
	// method with the requested name.
	ErrNoMethod = errors.New("mapping: method not found")

	// ErrBadArguments is returned by Invoke when the fixed arguments do not
	// match the method's parameters.
	ErrBadArguments = errors.New("mapping: arguments do not match method signature")
)
