package numeric_test

import (
	"fmt"

	"github.com/hasbyte1/go-blade/numeric"
	"github.com/hasbyte1/go-blade/seq"
)

func ExampleMedian() {
	odd, _ := numeric.Median(seq.Of(4, 5, 7, 2, 1))
	even, _ := numeric.Median(seq.Of(4, 5, 7, 2, 1, 8))
	fmt.Println(odd, even)
	// Output: 4 4.5
}

func ExamplePreciseSum() {
	tenths := seq.Of(0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1)
	fmt.Println(numeric.Sum(tenths, 0), numeric.PreciseSum(tenths, 0))
	// Output: 0.9999999999999999 1
}

func ExampleFrequency() {
	c, _ := numeric.Frequency(seq.Of(1, 2, 2, 3, 3, 3))
	fmt.Println(c.Most, c.Least, c.Overall)
	// Output: 3 1 [{3 3} {2 2} {1 1}]
}
