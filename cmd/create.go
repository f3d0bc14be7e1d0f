package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minehq/minehook/internal/config"
	"github.com/minehq/minehook/internal/hook"
	"github.com/minehq/minehook/internal/ui"
)

var createCmd = &cobra.Command{
	Use:   "create <command-pattern> <stage>",
	Short: "Scaffold a new hook script",
	Long: `Create a starter hook script in the hooks directory.

Examples:
  minehook create todo.add preexec
  minehook create "todo.*" notify
  minehook create "*" postexec`,
	Args: cobra.ExactArgs(2),
	RunE: hook.Wrap("hook.create", runCreate),
}

func runCreate(_ *cobra.Command, args []string) error {
	pattern := args[0]
	stage, err := hook.ParseStageStr(args[1])
	if err != nil {
		return err
	}

	path, err := hook.CreateHookScript(config.HooksDir(os.Getenv), pattern, stage)
	if err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("Created hook: %s", path))
	fmt.Println()
	fmt.Printf("  Pattern: %s\n", ui.Accent.Render(pattern))
	fmt.Printf("  Stage:   %s\n", ui.Accent.Render(string(stage)))
	fmt.Println()
	fmt.Printf("  Edit:    %s\n", ui.Accent.Render("$EDITOR "+path))
	fmt.Printf("  Test:    %s\n", ui.Accent.Render("minehook test "+path))
	fmt.Println()
	return nil
}
