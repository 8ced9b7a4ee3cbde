package compare

import (
	"fmt"

	"github.com/hasbyte1/go-blade/seq"
)

// ErrNoSequences is returned by the set operations when called without any
// input sequence: a fold over nothing has no identity element.
var ErrNoSequences = fmt.Errorf("compare: no sequences given: %w", seq.ErrEmpty)
