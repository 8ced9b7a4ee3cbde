package seq

import "errors"

// ErrEmpty is returned (wrapped) when an operation requires at least one
// element but the sequence is empty.
var ErrEmpty = errors.New("seq: empty sequence")
