package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/tool-advisor/internal/catalog"
)

// NewSearchCmd creates the 'search' command for intent-based tool search.
func NewSearchCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "search [intent...]",
		Aliases: []string{"find"},
		Short:   "Find tools matching a free-text intent",
		Long: `Describe what you want to accomplish and get matching tools.

Matching is case-insensitive substring containment over each tool's name,
description, badges, categories, and platforms. Results keep catalog order;
there is no relevance ranking.`,
		Example: `  tool-advisor search create a pdf
  tool-advisor search paratext
  tool-advisor search audio --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runSearch submits the intent query and renders the result cards.
func runSearch(intent string, jsonOutput bool) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	ctrl := sess.controller
	ctrl.SubmitQuery(intent)
	results := ctrl.Results()

	if jsonOutput {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if strings.TrimSpace(intent) == "" {
		fmt.Println("Enter an intent to see recommendations.")
		fmt.Println("Example: tool-advisor search create a pdf")
		return nil
	}

	if len(results) == 0 {
		fmt.Printf("No tools matched %q.\n", intent)
		fmt.Println("Tip: include an output type (PDF, audio, dictionary) or a tool you know.")
		return nil
	}

	fmt.Printf("Tools matching %q (%d):\n\n", intent, len(results))
	for _, tool := range results {
		printToolCard(ctrl.Average, tool)
	}

	return nil
}

// printToolCard renders one tool the way the search and browse views do.
func printToolCard(average func(string) (float64, bool), tool catalog.ToolRecord) {
	fmt.Printf("  %s\n", tool.Name)
	if tool.Tagline != "" {
		fmt.Printf("    %s\n", tool.Tagline)
	}
	if tool.Description != "" {
		fmt.Printf("    %s\n", tool.Description)
	}
	if len(tool.Badges) > 0 {
		fmt.Printf("    Badges:    %s\n", strings.Join(tool.Badges, ", "))
	}
	if len(tool.Platforms) > 0 {
		fmt.Printf("    Platforms: %s\n", strings.Join(tool.Platforms, ", "))
	}
	if avg, ok := average(tool.Name); ok {
		fmt.Printf("    Rating:    %.1f/5\n", avg)
	}
	for _, doc := range tool.Documentation {
		fmt.Printf("    Docs:      %s <%s>\n", doc.Title, doc.URL)
	}
	for _, forum := range tool.SupportForums {
		fmt.Printf("    Support:   %s <%s>\n", forum.Title, forum.URL)
	}
	if len(tool.Related) > 0 {
		fmt.Printf("    Related:   %s\n", strings.Join(tool.Related, ", "))
	}
	fmt.Println()
}
