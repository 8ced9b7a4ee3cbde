package reduce

import (
	"fmt"

	"github.com/hasbyte1/go-blade/seq"
)

// ErrEmpty is returned by Reduce and ReduceReverse on an empty sequence.
// Use Fold to supply a seed instead.
var ErrEmpty = fmt.Errorf("reduce: no seed and %w", seq.ErrEmpty)
