package hook

import (
	"testing"

	"github.com/minehq/minehook/pkg/types"
)

func passthrough(ctx *types.Context) (*types.Context, error) {
	return ctx, nil
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		command string
		want    bool
	}{
		{"todo.add", "todo.add", true},
		{"todo.add", "todo.done", false},
		{"todo.*", "todo.add", true},
		{"todo.*", "todo.done", true},
		{"todo.*", "stash.add", false},
		{"*", "anything", true},
		{"*", "todo.add", true},
		{"*.*", "todo.add", true},
		{"*.*", "single", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.command, func(t *testing.T) {
			got := matchPattern(tt.pattern, tt.command)
			if got != tt.want {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.command, got, tt.want)
			}
		})
	}
}

func TestRegistryRegisterAndResolve(t *testing.T) {
	reg := &Registry{}

	reg.Register(Hook{Pattern: "todo.*", Stage: StagePreexec, Mode: ModeTransform, Name: "auto-tag", Source: "user", Handler: passthrough})
	reg.Register(Hook{Pattern: "todo.add", Stage: StagePreexec, Mode: ModeTransform, Name: "enrich", Source: "user", Handler: passthrough})
	reg.Register(Hook{Pattern: "todo.add", Stage: StageNotify, Mode: ModeNotify, Name: "slack-notify", Source: "plugin:slack", Handler: passthrough})

	hooks := reg.Resolve("todo.add", StagePreexec)
	if len(hooks) != 2 {
		t.Fatalf("Resolve(todo.add, preexec) returned %d hooks, want 2", len(hooks))
	}
	// Sorted by name.
	if hooks[0].Name != "auto-tag" || hooks[1].Name != "enrich" {
		t.Errorf("Resolve order = [%s, %s], want [auto-tag, enrich]", hooks[0].Name, hooks[1].Name)
	}

	hooks = reg.Resolve("todo.done", StagePreexec)
	if len(hooks) != 1 || hooks[0].Name != "auto-tag" {
		t.Errorf("Resolve(todo.done, preexec) = %v, want only auto-tag", hooks)
	}

	hooks = reg.Resolve("todo.add", StageNotify)
	if len(hooks) != 1 || hooks[0].Name != "slack-notify" {
		t.Errorf("Resolve(todo.add, notify) = %v, want only slack-notify", hooks)
	}
}

func TestRegistryUnregister(t *testing.T) {
	reg := &Registry{}

	reg.Register(Hook{Pattern: "*", Stage: StageNotify, Mode: ModeNotify, Name: "a", Source: "user", Handler: passthrough})
	reg.Register(Hook{Pattern: "*", Stage: StageNotify, Mode: ModeNotify, Name: "b", Source: "plugin:slack", Handler: passthrough})
	reg.Register(Hook{Pattern: "*", Stage: StageNotify, Mode: ModeNotify, Name: "c", Source: "user", Handler: passthrough})

	reg.Unregister("user")

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d after Unregister, want 1", reg.Count())
	}
	if all := reg.All(); all[0].Source != "plugin:slack" {
		t.Errorf("remaining hook source = %q, want plugin:slack", all[0].Source)
	}
}

func TestRegistryHasHooks(t *testing.T) {
	reg := &Registry{}
	if reg.HasHooks("todo.add") {
		t.Error("empty registry should have no hooks")
	}

	reg.Register(Hook{Pattern: "todo.*", Stage: StageNotify, Mode: ModeNotify, Name: "n", Source: "user", Handler: passthrough})

	if !reg.HasHooks("todo.add") {
		t.Error("HasHooks(todo.add) = false, want true")
	}
	if reg.HasHooks("stash.pop") {
		t.Error("HasHooks(stash.pop) = true, want false")
	}
}

func TestModeForStage(t *testing.T) {
	for _, stage := range AllStages {
		want := ModeTransform
		if stage == StageNotify {
			want = ModeNotify
		}
		if got := ModeForStage(stage); got != want {
			t.Errorf("ModeForStage(%s) = %s, want %s", stage, got, want)
		}
	}
}
