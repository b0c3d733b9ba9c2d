package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/tool-advisor/internal/controller"
)

// NewCatalogCmd creates the 'catalog' command for browsing the tool catalog.
func NewCatalogCmd() *cobra.Command {
	var categories []string
	var platforms []string
	var search string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"browse", "ls"},
		Short:   "Browse the tool catalog grouped by category",
		Long: `Display the catalog grouped by category, optionally narrowed by
category chips, platform chips, and a free-text filter. All filters are
ANDed. A tool with several categories appears under each of them.`,
		Example: `  tool-advisor catalog
  tool-advisor catalog --category Layout
  tool-advisor catalog --platform Linux --search pdf
  tool-advisor catalog --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(categories, platforms, search, jsonOutput)
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Filter by category (repeatable)")
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "Filter by platform (repeatable)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Free-text catalog filter")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runCatalog applies the filter selection and renders the category groups.
func runCatalog(categories, platforms []string, search string, jsonOutput bool) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	ctrl := sess.controller
	ctrl.SwitchView(controller.ViewCatalog)
	for _, c := range categories {
		ctrl.ToggleCategory(c)
	}
	for _, p := range platforms {
		ctrl.TogglePlatform(p)
	}
	ctrl.SetCatalogSearch(search)

	groups := ctrl.Groups()

	if jsonOutput {
		data, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal groups: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(groups) == 0 {
		fmt.Println("No tools match the current filters.")
		return nil
	}

	for _, group := range groups {
		fmt.Printf("%s (%d)\n\n", group.Category, len(group.Members))
		for _, tool := range group.Members {
			printToolCard(ctrl.Average, tool)
		}
	}

	fmt.Printf("Categories: %s\n", strings.Join(sess.store.Categories(), ", "))
	fmt.Printf("Platforms:  %s\n", strings.Join(sess.store.Platforms(), ", "))

	return nil
}
