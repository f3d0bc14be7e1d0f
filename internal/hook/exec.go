package hook

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/minehq/minehook/pkg/types"
)

// ExecHandler creates a Handler that runs an external executable.
// For transform hooks it passes Context JSON on stdin and reads a modified
// Context from stdout. For notify hooks it passes Context JSON on stdin and
// discards output.
func ExecHandler(path string, mode Mode, timeout time.Duration) Handler {
	if timeout == 0 {
		if mode == ModeTransform {
			timeout = DefaultTransformTimeout
		} else {
			timeout = DefaultNotifyTimeout
		}
	}

	return func(ctx *types.Context) (*types.Context, error) {
		input, err := ctx.JSON()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize context; %w", err)
		}

		execCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cmd := exec.CommandContext(execCtx, path)
		cmd.Stdin = bytes.NewReader(input)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if execCtx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("hook timed out after %s", timeout)
			}
			if errMsg := stderr.String(); errMsg != "" {
				return nil, fmt.Errorf("hook failed; %s", errMsg)
			}
			return nil, fmt.Errorf("hook failed; %w", err)
		}

		if mode == ModeNotify {
			return ctx, nil
		}

		// Empty stdout keeps the incoming context
		output := stdout.Bytes()
		if len(output) == 0 {
			return ctx, nil
		}

		result, err := types.ParseContext(output)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hook output; %w", err)
		}
		return result, nil
	}
}
