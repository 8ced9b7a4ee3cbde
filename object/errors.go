package object

import "errors"

var (
	// ErrInconsistentMRO is returned by NewClass when the bases admit no
	// consistent linearisation.
	ErrInconsistentMRO = errors.New("object: cannot create a consistent method resolution order")

	// ErrNotStruct is returned by Reflect for values that are not structs or
	// non-nil pointers to structs.
	ErrNotStruct = errors.New("object: value is not a struct")
)
