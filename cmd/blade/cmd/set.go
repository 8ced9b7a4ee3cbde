package cmd

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-blade/compare"
)

var setOps = map[string]func(...iter.Seq[string]) ([]string, error){
	"diff":      compare.Diff[string],
	"symdiff":   compare.SymmetricDiff[string],
	"intersect": compare.Intersect[string],
	"union":     compare.Union[string],
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <diff|symdiff|intersect|union> <list>...",
		Short: "Combine comma-separated lists with a set operation",
		Example: `  blade set diff 1,2,3,4,5 5,2,10 10,11,2
  blade set union a,b b,c`,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: lo.Keys(setOps),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := setOps[args[0]]
			if !ok {
				return fmt.Errorf("unknown set operation %q", args[0])
			}
			seqs := lo.Map(args[1:], func(list string, _ int) iter.Seq[string] {
				return slices.Values(splitList(list))
			})
			a.log.WithCommand("set").Debugw("combining", "op", args[0], "lists", len(seqs))

			out, err := op(seqs...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, ","))
			return nil
		},
	}
}

func newUniqueCmd(a *app) *cobra.Command {
	var fold bool

	c := &cobra.Command{
		Use:   "unique [items...]",
		Short: "Print items with duplicates removed, keeping first appearances",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := words(args, cmd.InOrStdin())
			var out iter.Seq[string]
			if fold {
				out = compare.UniqueBy(in, strings.ToLower)
			} else {
				out = compare.Unique(in)
			}
			n := 0
			for v := range out {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				n++
			}
			a.log.WithCommand("unique").Debugw("done", "kept", n)
			return nil
		},
	}
	c.Flags().BoolVar(&fold, "ignore-case", false, "compare items case-insensitively")
	return c
}
