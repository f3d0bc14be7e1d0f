package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minehq/minehook/internal/config"
	"github.com/minehq/minehook/internal/hook"
	"github.com/minehq/minehook/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all active hook scripts",
	RunE:  hook.Wrap("hook.list", runList),
}

func runList(_ *cobra.Command, _ []string) error {
	dir := config.HooksDir(os.Getenv)

	hooks, err := hook.Discover(dir)
	if err != nil {
		return err
	}

	if len(hooks) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  No hooks found."))
		fmt.Println()
		fmt.Printf("  Hooks directory: %s\n", ui.Accent.Render(dir))
		fmt.Println()
		fmt.Printf("  Create one: %s\n", ui.Accent.Render("minehook create todo.add preexec"))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("  User Hooks"))
	fmt.Println()

	for _, h := range hooks {
		fmt.Printf("  %s %-20s %s  %s\n",
			ui.Success.Render("●"),
			ui.Accent.Render(h.Pattern),
			ui.Muted.Render(string(h.Stage)),
			ui.Muted.Render(string(hook.ModeForStage(h.Stage))),
		)
	}

	fmt.Println()
	fmt.Printf("  %s\n", ui.Muted.Render(fmt.Sprintf("%d hooks in %s", len(hooks), dir)))
	fmt.Println()
	return nil
}
