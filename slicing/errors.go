package slicing

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-blade/seq"
)

var (
	// ErrEmpty is returned by Choice on an empty sequence.
	ErrEmpty = fmt.Errorf("slicing: %w", seq.ErrEmpty)

	// ErrInvalidSize is returned for chunk sizes, sample sizes or slice
	// bounds outside their valid range.
	ErrInvalidSize = errors.New("slicing: invalid size")
)
