// Package logbook records command invocations to the JSON Lines command log.
// Every field of the incoming invocation context is optional; missing fields
// fall back to defaults so a bare `{}` still produces a valid entry.
package logbook

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/minehq/minehook/pkg/types"
)

// DecodeContext reads exactly one JSON object from r. Absent, empty, or
// malformed input is an error and nothing gets logged for the invocation.
func DecodeContext(r io.Reader) (map[string]any, error) {
	var raw map[string]any

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode invocation context; %w", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("trailing data after invocation context")
	}
	// A bare `null` decodes into a nil map without error; it is not an object.
	if raw == nil {
		return nil, fmt.Errorf("invocation context is not a JSON object")
	}

	return raw, nil
}

// BuildEntry derives a log entry from a raw invocation context.
// The clock supplies the timestamp when the context carries none.
func BuildEntry(raw map[string]any, clock func() time.Time) types.Entry {
	entry := types.Entry{
		Command:   "unknown",
		Timestamp: clock().UTC().Format(time.RFC3339),
	}

	if command, ok := raw["command"].(string); ok {
		entry.Command = command
	}
	if timestamp, ok := raw["timestamp"].(string); ok {
		entry.Timestamp = timestamp
	}
	if args, ok := raw["args"].([]any); ok {
		entry.ArgsCount = len(args)
	}
	if flags, ok := raw["flags"].(map[string]any); ok {
		entry.FlagsCount = len(flags)
	}

	return entry
}
