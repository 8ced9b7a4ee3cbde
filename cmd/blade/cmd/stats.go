package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-blade/numeric"
)

var statsOps = []string{"average", "median", "mode", "minmax", "interval", "sum", "count"}

func newStatsCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:       "stats <op> [numbers...]",
		Short:     "Compute a statistic over numbers",
		Long:      "Operations: " + strings.Join(statsOps, ", ") + ".\nNumbers are read from stdin when none are given.",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: statsOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			if !slices.Contains(statsOps, op) {
				return fmt.Errorf("unknown stats operation %q", op)
			}
			nums, err := parseNumbers(words(args[1:], cmd.InOrStdin()))
			if err != nil {
				return err
			}
			log := a.log.WithCommand("stats")
			log.Debugw("computing", "op", op, "n", len(nums))

			out, err := runStat(op, nums, a.cfg.Sum.Precise)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	// Parsed before PersistentPreRunE, which applies it through Overrides.
	c.Flags().BoolVar(&a.overrides.Precise, "precise", false, "use exact floating-point summation for sum")
	return c
}

func runStat(op string, nums []float64, precise bool) (string, error) {
	s := slices.Values(nums)
	switch op {
	case "average":
		v, err := numeric.Average(s)
		return formatFloat(v), err
	case "median":
		v, err := numeric.Median(s)
		return formatFloat(v), err
	case "mode":
		v, err := numeric.Mode(s)
		return formatFloat(v), err
	case "minmax":
		v, err := numeric.MinMax(s)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s, %s)", formatFloat(v.Min), formatFloat(v.Max)), nil
	case "interval":
		v, err := numeric.Interval(s)
		return formatFloat(v), err
	case "sum":
		if precise {
			return formatFloat(numeric.PreciseSum(s, 0)), nil
		}
		return formatFloat(numeric.Sum(s, 0)), nil
	default: // count
		c, err := numeric.Frequency(s)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for i, f := range c.Overall {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s\t%d", formatFloat(f.Value), f.Count)
		}
		return b.String(), nil
	}
}
