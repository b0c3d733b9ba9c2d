package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/tool-advisor/internal/compare"
	"github.com/khanglvm/tool-advisor/internal/controller"
)

// NewCompareCmd creates the 'compare' command for side-by-side comparison.
func NewCompareCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "compare <tool>...",
		Short: "Compare tools side by side",
		Long: `Queue tools for comparison and render an attribute table: one column
per tool in the order given, one row per attribute. At least two tools are
needed for a table.`,
		Example: `  tool-advisor compare PTXprint Paratext
  tool-advisor compare PTXprint Paratext FieldWorks --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runCompare toggles each named tool into the comparison set and renders
// the table, or the too-few-members prompt.
func runCompare(names []string, jsonOutput bool) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	ctrl := sess.controller
	ctrl.SwitchView(controller.ViewCompare)
	for _, name := range names {
		if _, err := ctrl.ToggleCompare(name); err != nil {
			return err
		}
	}

	table, ok := ctrl.ComparisonTable()
	if !ok {
		fmt.Printf("Comparison needs at least %d tools; %d queued.\n",
			compare.MinTableMembers, len(ctrl.Comparison()))
		fmt.Println("Add another tool to see the side-by-side table.")
		return nil
	}

	if jsonOutput {
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal table: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printComparisonTable(table)
	return nil
}

// printComparisonTable renders the table with aligned columns.
func printComparisonTable(table compare.Table) {
	width := len("Attribute")
	for _, row := range table.Rows {
		if len(row.Attribute) > width {
			width = len(row.Attribute)
		}
	}

	fmt.Printf("%-*s", width+2, "")
	fmt.Println(strings.Join(table.Columns, " | "))

	for _, row := range table.Rows {
		fmt.Printf("%-*s", width+2, row.Attribute)
		fmt.Println(strings.Join(row.Cells, " | "))
	}
}
