package numeric_test

import (
	"slices"
	"testing"

	"github.com/hasbyte1/go-blade/numeric"
)

// makeFloats creates n small floats for benchmarks.
func makeFloats(n int) []float64 {
	items := make([]float64, n)
	for i := range items {
		items[i] = float64(i%97) * 0.1
	}
	return items
}

func BenchmarkSum(b *testing.B) {
	items := makeFloats(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		numeric.Sum(slices.Values(items), 0)
	}
}

func BenchmarkPreciseSum(b *testing.B) {
	items := makeFloats(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		numeric.PreciseSum(slices.Values(items), 0)
	}
}

func BenchmarkMedian(b *testing.B) {
	items := makeFloats(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = numeric.Median(slices.Values(items))
	}
}

func BenchmarkFrequency(b *testing.B) {
	items := makeFloats(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = numeric.Frequency(slices.Values(items))
	}
}
