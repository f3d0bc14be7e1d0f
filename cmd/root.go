package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/minehq/minehook/internal/config"
	"github.com/minehq/minehook/internal/hook"
	"github.com/minehq/minehook/internal/processor"
)

var rootCmd = &cobra.Command{
	Use:   "minehook",
	Short: "Hook toolkit and command logger for the mine CLI",
	Long: "\nminehook records mine command invocations and manages mine's hook scripts.\n\n" +
		"Invoked with an invocation context JSON object on stdin, it appends a summary\n" +
		"record to the command log (a JSON Lines file under the user data directory).\n" +
		"It is designed to be installed as a notify-stage hook: it runs in the\n" +
		"background after a command completes, produces no stdout, and never affects\n" +
		"the outcome of the command that triggered it.",
	PersistentPreRunE: runInit,
	RunE:              runNotify,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (default: ~/.config/mine/config.yaml)")
	rootCmd.Flags().String("log-level", config.DefaultConfig.Logging.Level, "Logging level (debug, info, warn, error)")
	rootCmd.Flags().String("log-format", config.DefaultConfig.Logging.Format, "Logging format (json, text)")

	// Bind flags to viper
	viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.Flags().Lookup("log-format"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(logCmd)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("minehook version {{.Version}}\n")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	if err := config.InitConfig(configPath); err != nil {
		return fmt.Errorf("failed to initialize configuration; %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration; %w", err)
	}

	slog.SetDefault(processor.SetupLogger(cfg))

	// Make user hook scripts live for the management commands, so e.g.
	// hook.list notify hooks fire exactly as they would in the host CLI.
	err = hook.RegisterUserHooks(
		hook.DefaultRegistry,
		config.HooksDir(os.Getenv),
		time.Duration(cfg.Hooks.TransformTimeoutSeconds)*time.Second,
		time.Duration(cfg.Hooks.NotifyTimeoutSeconds)*time.Second,
	)
	if err != nil {
		return fmt.Errorf("failed to register user hooks; %w", err)
	}

	return nil
}

// runNotify is the notify hook entry point: read one invocation context from
// stdin, append one line to the command log, write nothing to stdout.
func runNotify(cmd *cobra.Command, args []string) error {
	return processor.Process(os.Stdin)
}

func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()

	if err != nil {
		cmd, _, _ := rootCmd.Find(os.Args[1:])
		if cmd == nil {
			cmd = rootCmd
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !cmd.SilenceUsage {
			fmt.Fprintf(os.Stderr, "\n")
			cmd.SetOut(os.Stderr)
			cmd.Usage()
		}

		return err
	}

	return nil
}
