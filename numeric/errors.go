package numeric

import (
	"fmt"

	"github.com/hasbyte1/go-blade/seq"
)

// ErrEmpty is returned when an aggregation requires at least one element.
var ErrEmpty = fmt.Errorf("numeric: %w", seq.ErrEmpty)
