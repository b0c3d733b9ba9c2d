/*
Package main is the entry point for the tool-advisor CLI.

tool-advisor is a catalog browser for Bible translation software: describe an
intent or browse the static tool catalog, filter by category and platform,
rate tools, and compare them side by side.

Usage:
  tool-advisor [command]

Available Commands:
  search      Find tools matching a free-text intent
  catalog     Browse the tool catalog grouped by category
  rate        Rate a tool from 1 to 5 stars
  compare     Compare tools side by side
  workspace   Manage the resource workspace (placeholder)
  version     Show version information
  help        Help about any command

Examples:
  # Find a tool for a task
  tool-advisor search create a pdf from my paratext project

  # Browse layout tools that run on Linux
  tool-advisor catalog --category Layout --platform Linux

  # Rate and compare
  tool-advisor rate Paratext 4
  tool-advisor compare PTXprint Paratext
*/
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/khanglvm/tool-advisor/internal/cli"
	"github.com/khanglvm/tool-advisor/internal/version"
)

func main() {
	// Optional .env for TOOL_ADVISOR_* overrides; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "tool-advisor",
		Short: "Find, rate, and compare Bible translation tools",
		Long: `tool-advisor is a catalog browser for Bible translation software.

Describe what you want to accomplish and it surfaces the relevant tools with
their documentation and support links. Browse the catalog by category and
platform, star-rate tools, and queue tools for side-by-side comparison.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewCatalogCmd())
	rootCmd.AddCommand(cli.NewRateCmd())
	rootCmd.AddCommand(cli.NewCompareCmd())
	rootCmd.AddCommand(cli.NewWorkspaceCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
