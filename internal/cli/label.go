package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var flagAll bool

var labelCmd = &cobra.Command{
	Use:   "label [pr-number]...",
	Short: "Classify PRs and converge their size labels",
	Long: "label computes each PR's change size, maps it to a size tier, and\n" +
		"applies the minimal label delta. A PR already carrying the right label\n" +
		"is left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, err := prNumbers(args)
		if err != nil {
			return err
		}
		if flagAll == (len(numbers) > 0) {
			return fmt.Errorf("%w: give PR numbers or --all, not both or neither", errUsage)
		}

		rt, err := newRuntime(false, true)
		if err != nil {
			return err
		}
		defer rt.close()

		ctx := cmd.Context()
		if flagAll {
			mutated, err := rt.service.LabelAll(ctx, rt.repo)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converged %s: %d PR(s) relabeled\n", rt.repo, mutated)
			return nil
		}

		for _, n := range numbers {
			delta, err := rt.service.LabelPR(ctx, rt.repo, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s#%d: %s\n", rt.repo, n, describeDelta(delta))
		}
		return nil
	},
}

func init() {
	labelCmd.Flags().BoolVar(&flagAll, "all", false, "label every open PR in the repository")
}

// prNumbers parses positional arguments as PR numbers.
func prNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: invalid PR number %q", errUsage, a)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
