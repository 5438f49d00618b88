package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
)

var checkCmd = &cobra.Command{
	Use:   "check <pr-number>...",
	Short: "Dry run: print the label delta without applying it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, err := prNumbers(args)
		if err != nil {
			return err
		}

		rt, err := newRuntime(true, false)
		if err != nil {
			return err
		}
		defer rt.close()

		for _, n := range numbers {
			delta, err := rt.service.LabelPR(cmd.Context(), rt.repo, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s#%d: %s\n", rt.repo, n, describeDelta(delta))
		}
		return nil
	},
}

// describeDelta renders a delta for terminal output.
func describeDelta(delta model.LabelDelta) string {
	if delta.Empty() {
		return "already converged"
	}

	var parts []string
	if delta.ToAdd != "" {
		parts = append(parts, "add "+delta.ToAdd)
	}
	if len(delta.ToRemove) > 0 {
		parts = append(parts, "remove "+strings.Join(delta.ToRemove, ", "))
	}
	return strings.Join(parts, "; ")
}
