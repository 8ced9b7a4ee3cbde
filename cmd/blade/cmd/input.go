package cmd

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// words returns args, or the whitespace-separated words of r when args is
// empty.
func words(args []string, r io.Reader) iter.Seq[string] {
	if len(args) > 0 {
		return func(yield func(string) bool) {
			for _, a := range args {
				if !yield(a) {
					return
				}
			}
		}
	}
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	}
}

func parseNumbers(in iter.Seq[string]) ([]float64, error) {
	var out []float64
	for w := range in {
		f, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", w, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// splitList parses "a,b,c"; blank entries are dropped.
func splitList(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
