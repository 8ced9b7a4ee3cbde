package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-blade/order"
)

func newGroupCmd(a *app) *cobra.Command {
	var byLength bool

	c := &cobra.Command{
		Use:   "group [items...]",
		Short: "Group equal items (or items of equal length) in sorted key order",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := words(args, cmd.InOrStdin())
			w := cmd.OutOrStdout()
			a.log.WithCommand("group").Debugw("grouping", "by-length", byLength)
			if byLength {
				for g := range order.GroupBy(in, func(s string) int { return len(s) }) {
					fmt.Fprintf(w, "%d: %s\n", g.Key, strings.Join(g.Members, " "))
				}
				return nil
			}
			for g := range order.GroupByValue(in) {
				fmt.Fprintf(w, "%s: %d\n", g.Key, len(g.Members))
			}
			return nil
		},
	}
	c.Flags().BoolVar(&byLength, "by-length", false, "group by item length")
	return c
}
