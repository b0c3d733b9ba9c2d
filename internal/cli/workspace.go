package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewWorkspaceCmd creates the 'workspace' command group for the resource
// workspace placeholder.
func NewWorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Manage the resource workspace (placeholder)",
		Long: `Store a resource link and display the workspace panel.

The workspace only remembers the last-submitted link for now; content
ingestion, Q&A, and summarization are not implemented yet.`,
	}

	cmd.AddCommand(newWorkspaceSetCmd())
	cmd.AddCommand(newWorkspaceShowCmd())

	return cmd
}

func newWorkspaceSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set <url>",
		Short:   "Store a resource link for the workspace",
		Example: `  tool-advisor workspace set https://software.sil.org/ptxprint/documentation/`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspaceSet(args[0])
		},
	}
}

func newWorkspaceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the workspace panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspaceShow()
		},
	}
}

func runWorkspaceSet(link string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	if err := sess.controller.SubmitResource(link); err != nil {
		return err
	}

	fmt.Printf("Workspace resource set to %s\n", strings.TrimSpace(link))
	fmt.Println("Run 'tool-advisor workspace show' to open the panel.")
	return nil
}

func runWorkspaceShow() error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	link, ok := sess.controller.WorkspaceResource()
	if !ok {
		fmt.Println("No workspace resource yet.")
		fmt.Println("Add one with 'tool-advisor workspace set <url>'.")
		return nil
	}

	fmt.Println("Resource")
	fmt.Printf("  %s\n\n", link)
	fmt.Println("Planned features")
	fmt.Println("  - Content ingestion & summarization")
	fmt.Println("  - Q&A over extracted text")
	fmt.Println("  - Key concept extraction")
	fmt.Println("  - Export notes")
	fmt.Println()
	fmt.Println("Interaction with this resource is coming soon.")
	return nil
}
