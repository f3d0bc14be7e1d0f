package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minehq/minehook/internal/hook"
	"github.com/minehq/minehook/internal/ui"
)

var testCmd = &cobra.Command{
	Use:   "test <file>",
	Short: "Dry-run a hook with sample input to verify it works",
	Args:  cobra.ExactArgs(1),
	RunE:  hook.Wrap("hook.test", runTest),
}

func runTest(_ *cobra.Command, args []string) error {
	path := args[0]

	fmt.Println()
	fmt.Printf("  Testing: %s\n", ui.Accent.Render(path))
	fmt.Println()

	output, err := hook.DryRun(path)
	if err != nil {
		return err
	}

	ui.Ok("Hook executed successfully")
	if output != "" {
		fmt.Println()
		fmt.Printf("  Output:\n  %s\n", ui.Muted.Render(output))
	}
	fmt.Println()
	return nil
}
