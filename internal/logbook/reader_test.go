package logbook

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "command_log.jsonl")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestTail(t *testing.T) {
	path := writeLog(t, `{"command": "build", "timestamp": "2024-01-01T00:00:00Z", "args_count": 1, "flags_count": 0}
{"command": "todo.add", "timestamp": "2024-01-02T00:00:00Z", "args_count": 2, "flags_count": 1}
{"command": "build", "timestamp": "2024-01-03T00:00:00Z", "args_count": 0, "flags_count": 0}
`)

	entries, err := Tail(path, 2)
	if err != nil {
		t.Fatalf("Tail() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Command != "todo.add" || entries[1].Command != "build" {
		t.Errorf("Tail returned wrong window: %+v", entries)
	}
}

func TestTailMissingFile(t *testing.T) {
	entries, err := Tail(filepath.Join(t.TempDir(), "absent.jsonl"), 10)
	if err != nil {
		t.Fatalf("Tail() on missing file should not error, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestTailSkipsCorruptLines(t *testing.T) {
	path := writeLog(t, `{"command": "build", "timestamp": "2024-01-01T00:00:00Z", "args_count": 0, "flags_count": 0}
not json at all
{"command": "status", "timestamp": "2024-01-02T00:00:00Z", "args_count": 0, "flags_count": 0}
`)

	entries, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (corrupt line skipped)", len(entries))
	}
}

func TestStats(t *testing.T) {
	path := writeLog(t, `{"command": "build", "timestamp": "2024-01-01T00:00:00Z", "args_count": 0, "flags_count": 0}
{"command": "todo.add", "timestamp": "2024-01-02T00:00:00Z", "args_count": 1, "flags_count": 0}
{"command": "build", "timestamp": "2024-01-03T00:00:00Z", "args_count": 0, "flags_count": 1}
{"command": "status", "timestamp": "2024-01-04T00:00:00Z", "args_count": 0, "flags_count": 0}
`)

	counts, total, err := Stats(path)
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if len(counts) != 3 {
		t.Fatalf("got %d commands, want 3", len(counts))
	}
	if counts[0].Command != "build" || counts[0].Count != 2 {
		t.Errorf("counts[0] = %+v, want build/2", counts[0])
	}
	// Equal counts sort by name.
	if counts[1].Command != "status" || counts[2].Command != "todo.add" {
		t.Errorf("tie-break order wrong: %+v", counts[1:])
	}
}

func TestStatsEmptyLog(t *testing.T) {
	counts, total, err := Stats(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if total != 0 || len(counts) != 0 {
		t.Errorf("got counts=%v total=%d, want empty", counts, total)
	}
}
