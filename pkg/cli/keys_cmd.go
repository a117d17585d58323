package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structmatch/structmatch/pkg/pattern"
	"github.com/structmatch/structmatch/pkg/patternfile"
)

func newKeysCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "keys FILE",
		Short: "List the selection keys a pattern document can bind",
		Long: `List, without running a match, the selection names the pattern can
bind. Useful for wiring handler argument shapes up front.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, err := patternfile.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			keys := pattern.Keys(compiled)
			if keys == nil {
				keys = []string{}
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), keys, false)
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print keys as a JSON array")
	return cmd
}
