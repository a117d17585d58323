package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/structmatch/structmatch/pkg/pattern"
	"github.com/structmatch/structmatch/pkg/patternfile"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate and compile pattern documents",
		Long: `Validate pattern documents against the document schema and compile
them. Exits non-zero on the first invalid document.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				compiled, err := patternfile.LoadFromFile(path)
				if err != nil {
					return err
				}
				keys := pattern.Keys(compiled)
				if len(keys) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (selects %s)\n", path, strings.Join(keys, ", "))
				}
			}
			return nil
		},
	}
}
