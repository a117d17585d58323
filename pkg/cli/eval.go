package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/structmatch/structmatch/pkg/pattern"
	"github.com/structmatch/structmatch/pkg/patternfile"
)

// ErrNoMatch is returned by eval --strict when the input does not match.
var ErrNoMatch = errors.New("input does not match pattern")

func newEvalCmd() *cobra.Command {
	var (
		patternPath string
		pretty      bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "eval --pattern FILE [INPUT]",
		Short: "Match input data against a pattern document",
		Long: `Match JSON input against a pattern document and print the result.

The input is read from INPUT, or from stdin when INPUT is omitted or
"-". The result is a JSON object with "matched" and, when names were
bound, "selections".`,
		Example: `  # Match a file against a pattern
  structmatch eval --pattern order.yaml order.json

  # Pipe input through stdin
  curl -s https://api.example.com/order | structmatch eval -p order.yaml

  # Use the exit code in scripts
  structmatch eval -p order.yaml --strict order.json && echo accepted`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, err := patternfile.LoadFromFile(patternPath)
			if err != nil {
				return err
			}
			log.Debug("pattern loaded", "file", patternPath, "keys", pattern.Keys(compiled))

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			value, err := oj.Parse(data)
			if err != nil {
				return fmt.Errorf("invalid JSON input: %w", err)
			}

			res := pattern.Match(compiled, value)
			out := map[string]any{"matched": res.Matched}
			if len(res.Selections) > 0 {
				out["selections"] = map[string]any(res.Selections)
			}
			if err := writeJSON(cmd.OutOrStdout(), out, pretty); err != nil {
				return err
			}

			if strict && !res.Matched {
				return ErrNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&patternPath, "pattern", "p", "", "pattern document file (required)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the input does not match")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

// readInput reads the match input from the named file, or stdin for "-"
// or no argument.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	var out string
	if pretty {
		out = oj.JSON(v, 2)
	} else {
		out = oj.JSON(v)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
