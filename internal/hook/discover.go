package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minehq/minehook/pkg/types"
)

// UserHook represents a hook script discovered from the hooks directory.
type UserHook struct {
	Path    string
	Pattern string
	Stage   Stage
	Name    string
}

// Discover scans dir and returns all valid hook scripts.
// Scripts follow the naming convention: <command-pattern>.<stage>.<ext>
// Examples: todo.add.preexec.sh, todo.*.notify.py, *.postexec.sh
// Files that don't match the convention or aren't executable are skipped.
func Discover(dir string) ([]UserHook, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks dir; %w", err)
	}

	var hooks []UserHook
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		h, err := parseHookFilename(name)
		if err != nil {
			continue
		}

		path := filepath.Join(dir, name)

		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode()&0o111 == 0 {
			continue
		}

		h.Path = path
		hooks = append(hooks, h)
	}

	return hooks, nil
}

// parseHookFilename parses a hook filename into its components.
// The command pattern may contain dots, so we parse from right to left:
//
//	todo.add.preexec.sh    → pattern="todo.add", stage="preexec"
//	todo.*.notify.py       → pattern="todo.*",   stage="notify"
//	*.postexec.sh          → pattern="*",        stage="postexec"
func parseHookFilename(name string) (UserHook, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	lastDot := strings.LastIndex(base, ".")
	if lastDot < 0 {
		return UserHook{}, fmt.Errorf("invalid hook filename: %s", name)
	}

	stageStr := base[lastDot+1:]
	pattern := base[:lastDot]

	stage, err := parseStage(stageStr)
	if err != nil {
		return UserHook{}, fmt.Errorf("invalid stage in %s; %w", name, err)
	}

	if pattern == "" {
		return UserHook{}, fmt.Errorf("empty pattern in %s", name)
	}

	return UserHook{
		Pattern: pattern,
		Stage:   stage,
		Name:    name,
	}, nil
}

// ParseStageStr converts a stage string to a Stage constant. Exported for CLI use.
func ParseStageStr(s string) (Stage, error) {
	return parseStage(s)
}

func parseStage(s string) (Stage, error) {
	switch Stage(s) {
	case StagePrevalidate, StagePreexec, StagePostexec, StageNotify:
		return Stage(s), nil
	default:
		return "", fmt.Errorf("unknown stage: %s", s)
	}
}

// RegisterUserHooks discovers hook scripts in dir and registers them with reg,
// using ExecHandler with the given per-mode timeouts.
func RegisterUserHooks(reg *Registry, dir string, transformTimeout, notifyTimeout time.Duration) error {
	hooks, err := Discover(dir)
	if err != nil {
		return err
	}

	for _, h := range hooks {
		mode := ModeForStage(h.Stage)

		timeout := transformTimeout
		if mode == ModeNotify {
			timeout = notifyTimeout
		}

		reg.Register(Hook{
			Pattern: h.Pattern,
			Stage:   h.Stage,
			Mode:    mode,
			Name:    h.Name,
			Source:  "user",
			Handler: ExecHandler(h.Path, mode, timeout),
			Timeout: timeout,
		})
	}

	return nil
}

// CreateHookScript generates a starter hook script in dir and returns its path.
func CreateHookScript(dir, pattern string, stage Stage) (string, error) {
	// Sanitize pattern to prevent directory traversal
	if strings.ContainsAny(pattern, "/\\") {
		return "", fmt.Errorf("pattern %q must not contain path separators", pattern)
	}
	if strings.Contains(pattern, "..") {
		return "", fmt.Errorf("pattern %q must not contain path traversal", pattern)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create hooks dir; %w", err)
	}

	filename := fmt.Sprintf("%s.%s.sh", pattern, stage)
	path := filepath.Join(dir, filename)

	// Verify the resolved path is within the hooks directory
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path; %w", err)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve hooks dir; %w", err)
	}
	if !strings.HasPrefix(absPath, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("hook path escapes hooks directory")
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("hook already exists: %s", path)
	}

	mode := ModeForStage(stage)

	script := fmt.Sprintf(`#!/bin/bash
# mine hook: %s at %s stage (%s mode)
# Created: %s
#
# This script receives a JSON context on stdin.
# For transform hooks, write modified JSON to stdout.
# For notify hooks, perform side effects (output is ignored).
#
# Input JSON format:
# {
#   "command": "todo.add",
#   "args": ["buy milk"],
#   "flags": {"priority": "high"},
#   "result": null,
#   "timestamp": "2026-01-15T10:30:00Z"
# }

# Read context from stdin
CONTEXT=$(cat)

# Example: log the command
COMMAND=$(echo "$CONTEXT" | grep -o '"command":"[^"]*"' | cut -d'"' -f4)
# echo "Hook fired for: $COMMAND" >&2
`, pattern, stage, mode, time.Now().Format("2006-01-02"))

	if mode != ModeNotify {
		script += `
# For transform hooks: echo modified context to stdout
echo "$CONTEXT"
`
	}

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return "", fmt.Errorf("failed to write hook script; %w", err)
	}

	return path, nil
}

// DryRun executes a hook script once with a sample context and returns a
// human-readable summary of the result.
func DryRun(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("hook not found: %s", path)
	}
	if info.Mode()&0o111 == 0 {
		return "", fmt.Errorf("hook not executable: %s (run: chmod +x %s)", path, path)
	}

	h, err := parseHookFilename(filepath.Base(path))
	if err != nil {
		return "", err
	}

	mode := ModeForStage(h.Stage)
	timeout := DefaultTransformTimeout
	if mode == ModeNotify {
		timeout = DefaultNotifyTimeout
	}

	ctx := types.NewContext("test.command", []string{"sample", "args"}, map[string]string{
		"flag1": "value1",
	})

	handler := ExecHandler(path, mode, timeout)
	result, err := handler(ctx)
	if err != nil {
		return "", fmt.Errorf("hook execution failed; %w", err)
	}

	if mode == ModeNotify {
		return "Notify hook executed successfully (no output expected)", nil
	}

	data, err := result.JSON()
	if err != nil {
		return "", fmt.Errorf("failed to serialize result; %w", err)
	}
	return string(data), nil
}
