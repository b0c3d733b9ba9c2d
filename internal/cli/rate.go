package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewRateCmd creates the 'rate' command for star-rating a tool.
func NewRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <tool> <stars>",
		Short: "Rate a tool from 1 to 5 stars",
		Long: `Record your current star rating for a tool.

Re-rating replaces your previous stars instead of adding another vote:
a tool's rater count reflects distinct users, not rating events.`,
		Example: `  tool-advisor rate Paratext 4
  tool-advisor rate PTXprint 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stars, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("stars must be a number between 1 and 5, got %q", args[1])
			}
			return runRate(args[0], stars)
		},
	}

	return cmd
}

// runRate records the rating and prints the updated aggregate.
func runRate(toolName string, stars int) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	ctrl := sess.controller
	agg, err := ctrl.Rate(toolName, stars)
	if err != nil {
		return err
	}

	avg, _ := ctrl.Average(toolName)
	raters := "raters"
	if agg.Count == 1 {
		raters = "rater"
	}
	fmt.Printf("Rated %s %d/5.\n", toolName, stars)
	fmt.Printf("Average: %.1f stars across %d %s\n", avg, agg.Count, raters)

	return nil
}
