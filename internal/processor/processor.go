// Package processor orchestrates a single notify hook invocation: decode the
// invocation context from stdin, derive a log entry, append it to the command
// log. No stdout is produced; the host CLI neither waits on nor reads from
// this hook.
package processor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/minehq/minehook/internal/config"
	"github.com/minehq/minehook/internal/logbook"
)

// Processor records notify hook invocations to the command log.
type Processor struct {
	store  logbook.Store
	logger *slog.Logger
	clock  func() time.Time
}

// NewProcessor creates a processor writing through the given store.
func NewProcessor(store logbook.Store, logger *slog.Logger) *Processor {
	return &Processor{
		store:  store,
		logger: logger,
		clock:  time.Now,
	}
}

// Process is the main entry point for one hook invocation. It loads the
// configuration, sets up logging, and records the context read from stdin to
// the command log under the resolved data directory.
func Process(stdin io.Reader) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration; %w", err)
	}

	logger := SetupLogger(cfg)
	slog.SetDefault(logger)

	proc := NewProcessor(logbook.FileStore{}, logger)
	return proc.Record(stdin, config.CommandLogPath(os.Getenv))
}

// Record decodes one invocation context from stdin and appends the derived
// entry to the log at path. Malformed input and storage failures are fatal
// for the invocation; nothing partial is written.
func (p *Processor) Record(stdin io.Reader, path string) error {
	raw, err := logbook.DecodeContext(stdin)
	if err != nil {
		p.logger.Error("failed to decode invocation context", "error", err)
		return err
	}

	entry := logbook.BuildEntry(raw, p.clock)

	p.logger.Debug("recording invocation",
		"command", entry.Command,
		"args_count", entry.ArgsCount,
		"flags_count", entry.FlagsCount)

	if err := logbook.Record(p.store, path, entry); err != nil {
		p.logger.Error("failed to record invocation", "path", path, "error", err)
		return err
	}

	p.logger.Info("invocation recorded", "command", entry.Command, "path", path)
	return nil
}

// SetupLogger creates and configures the logger based on configuration.
// Logs are written to file only (not stderr) to avoid interfering with hook
// framework IO; with no log file configured, logging is disabled.
func SetupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var output io.Writer

	if cfg.Logging.LogFile != "" {
		logFile, err := openLogFile(cfg.Logging.LogFile)
		if err != nil {
			// Critical error during startup - write to stderr and use discard
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", cfg.Logging.LogFile, err)
			output = io.Discard
		} else {
			output = logFile
		}
	} else {
		output = io.Discard
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// openLogFile opens or creates a diagnostic log file for writing
func openLogFile(path string) (*os.File, error) {
	// Expand ~ to home directory if present
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory; %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory; %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file; %w", err)
	}

	return file, nil
}
