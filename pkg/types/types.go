package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Context carries a command invocation through the hook pipeline. It is the
// JSON payload delivered to hook executables on stdin; transform hooks return
// a (possibly modified) Context on stdout.
type Context struct {
	Command   string            `json:"command"`
	Args      []string          `json:"args"`
	Flags     map[string]string `json:"flags"`
	Result    any               `json:"result,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// NewContext creates a Context for the given command invocation.
func NewContext(command string, args []string, flags map[string]string) *Context {
	if args == nil {
		args = []string{}
	}
	if flags == nil {
		flags = map[string]string{}
	}
	return &Context{
		Command:   command,
		Args:      args,
		Flags:     flags,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON serializes the context for passing to hook executables.
func (c *Context) JSON() ([]byte, error) {
	return json.Marshal(c)
}

// ParseContext deserializes a Context from JSON.
func ParseContext(data []byte) (*Context, error) {
	var ctx Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("failed to parse hook context; %w", err)
	}
	return &ctx, nil
}

// Entry is one record of the command log. Exactly these four fields are
// persisted, one JSON object per line.
type Entry struct {
	Command    string `json:"command"`
	Timestamp  string `json:"timestamp"`
	ArgsCount  int    `json:"args_count"`
	FlagsCount int    `json:"flags_count"`
}
