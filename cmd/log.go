package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minehq/minehook/internal/config"
	"github.com/minehq/minehook/internal/hook"
	"github.com/minehq/minehook/internal/logbook"
	"github.com/minehq/minehook/internal/ui"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect the command log",
	Long:  "Inspect the JSON Lines command log written by the notify recorder.",
	RunE:  hook.Wrap("log.tail", runLogTail),
}

var logTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show the most recent command log entries",
	RunE:  hook.Wrap("log.tail", runLogTail),
}

var logStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-command invocation counts",
	RunE:  hook.Wrap("log.stats", runLogStats),
}

var tailCount int

func init() {
	logTailCmd.Flags().IntVarP(&tailCount, "count", "n", 10, "Number of entries to show")
	// Bare `minehook log` aliases `log tail`, so it takes the same flag.
	logCmd.Flags().IntVarP(&tailCount, "count", "n", 10, "Number of entries to show")
	logCmd.AddCommand(logTailCmd)
	logCmd.AddCommand(logStatsCmd)
}

func runLogTail(_ *cobra.Command, _ []string) error {
	path := config.CommandLogPath(os.Getenv)

	entries, err := logbook.Tail(path, tailCount)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  Command log is empty."))
		fmt.Println()
		fmt.Printf("  Log file: %s\n", ui.Accent.Render(path))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("  Recent Commands"))
	fmt.Println()

	for _, e := range entries {
		fmt.Printf("  %s %-20s %s\n",
			ui.Muted.Render(e.Timestamp),
			ui.Accent.Render(e.Command),
			ui.Muted.Render(fmt.Sprintf("%d args, %d flags", e.ArgsCount, e.FlagsCount)),
		)
	}

	fmt.Println()
	return nil
}

func runLogStats(_ *cobra.Command, _ []string) error {
	path := config.CommandLogPath(os.Getenv)

	counts, total, err := logbook.Stats(path)
	if err != nil {
		return err
	}

	if total == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  Command log is empty."))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("  Command Usage"))
	fmt.Println()

	for _, c := range counts {
		fmt.Printf("  %-24s %s\n",
			ui.Accent.Render(c.Command),
			ui.Muted.Render(fmt.Sprintf("%d", c.Count)),
		)
	}

	fmt.Println()
	fmt.Printf("  %s\n", ui.Muted.Render(fmt.Sprintf("%d invocations total", total)))
	fmt.Println()
	return nil
}
