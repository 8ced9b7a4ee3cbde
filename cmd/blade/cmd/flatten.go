package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-blade/reduce"
	"github.com/hasbyte1/go-blade/seq"
)

func newFlattenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "flatten [json]",
		Short:   "Print the leaves of a nested JSON array, one per line",
		Example: `  blade flatten '[[1, [2, 3]], ["four", [[5]]]]'`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				r = strings.NewReader(args[0])
			}
			var doc any
			if err := json.NewDecoder(r).Decode(&doc); err != nil {
				return fmt.Errorf("invalid JSON: %w", err)
			}
			n := 0
			for leaf := range reduce.Flatten(seq.Of(doc)) {
				fmt.Fprintln(cmd.OutOrStdout(), formatLeaf(leaf))
				n++
			}
			a.log.WithCommand("flatten").Debugw("flattened", "leaves", n)
			return nil
		},
	}
}

// formatLeaf prints scalars plainly and objects as compact JSON.
func formatLeaf(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return formatFloat(v)
	case map[string]any:
		b, _ := json.Marshal(v)
		return string(b)
	case nil:
		return "null"
	default:
		return fmt.Sprint(v)
	}
}
