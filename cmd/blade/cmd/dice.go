package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-blade/slicing"
)

func newDiceCmd(a *app) *cobra.Command {
	var (
		size int
		fill string
	)

	c := &cobra.Command{
		Use:     "dice [items...]",
		Short:   "Split items into rows of a fixed size",
		Example: `  blade dice --size 3 --fill x a b c d e f g`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("size") {
				a.cfg.Dice.Size = size
			}
			if cmd.Flags().Changed("fill") {
				a.cfg.Dice.Fill = fill
			}
			rows, err := slicing.Dice(words(args, cmd.InOrStdin()), a.cfg.Dice.Size, a.cfg.Dice.Fill)
			if err != nil {
				return err
			}
			a.log.WithCommand("dice").Debugw("slicing", "size", a.cfg.Dice.Size, "fill", a.cfg.Dice.Fill)
			for row := range rows {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(row, " "))
			}
			return nil
		},
	}
	c.Flags().IntVarP(&size, "size", "n", 2, "row length")
	c.Flags().StringVar(&fill, "fill", "", "value used to pad the last row")
	return c
}
