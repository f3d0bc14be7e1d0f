// Package hook provides the command execution pipeline for mine's hook system.
//
// Commands traverse four stages: prevalidate → preexec → postexec → notify.
// Hooks are either transform (modify the context) or notify (fire-and-forget
// side effects). The pipeline is a no-op when no hooks are registered.
package hook

import (
	"time"

	"github.com/minehq/minehook/pkg/types"
)

// Stage identifies when a hook runs in the pipeline.
type Stage string

const (
	StagePrevalidate Stage = "prevalidate"
	StagePreexec     Stage = "preexec"
	StagePostexec    Stage = "postexec"
	StageNotify      Stage = "notify"
)

// AllStages is the execution order for the pipeline.
var AllStages = []Stage{StagePrevalidate, StagePreexec, StagePostexec, StageNotify}

// Mode determines how a hook interacts with the pipeline.
type Mode string

const (
	ModeTransform Mode = "transform" // receives and returns modified Context
	ModeNotify    Mode = "notify"    // receives Context, no response expected
)

// Handler is the function signature for hook execution.
// It receives the current context and returns a potentially modified context.
// For notify hooks the returned context is ignored.
type Handler func(ctx *types.Context) (*types.Context, error)

// Hook defines a single hook registration.
type Hook struct {
	// Pattern is the command pattern this hook matches (e.g. "todo.add", "todo.*", "*").
	Pattern string
	// Stage is when this hook runs.
	Stage Stage
	// Mode is how this hook interacts with the pipeline.
	Mode Mode
	// Name is a human-readable identifier for this hook.
	Name string
	// Source identifies where this hook came from (e.g. "user", "plugin:obsidian").
	Source string
	// Handler executes the hook.
	Handler Handler
	// Timeout is the maximum duration for this hook to execute.
	// Zero means use the default (5s for transform, 30s for notify).
	Timeout time.Duration
}

// ModeForStage returns the mode implied by a stage: notify hooks fire and
// forget, every other stage transforms.
func ModeForStage(stage Stage) Mode {
	if stage == StageNotify {
		return ModeNotify
	}
	return ModeTransform
}

// DefaultTransformTimeout is the default timeout for transform hooks.
const DefaultTransformTimeout = 5 * time.Second

// DefaultNotifyTimeout is the default timeout for notify hooks.
const DefaultNotifyTimeout = 30 * time.Second
