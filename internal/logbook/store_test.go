package logbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minehq/minehook/pkg/types"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	dirs  []string
	lines map[string][]string
	fail  error
}

func newMemStore() *memStore {
	return &memStore{lines: make(map[string][]string)}
}

func (m *memStore) EnsureDir(dir string) error {
	if m.fail != nil {
		return m.fail
	}
	m.dirs = append(m.dirs, dir)
	return nil
}

func (m *memStore) AppendLine(path string, line []byte) error {
	if m.fail != nil {
		return m.fail
	}
	m.lines[path] = append(m.lines[path], string(line))
	return nil
}

func TestRecord(t *testing.T) {
	store := newMemStore()
	entry := types.Entry{
		Command:    "build",
		Timestamp:  "2024-01-01T00:00:00Z",
		ArgsCount:  1,
		FlagsCount: 1,
	}

	path := filepath.Join("data", "mine", "command_log.jsonl")
	if err := Record(store, path, entry); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	if len(store.dirs) != 1 || store.dirs[0] != filepath.Join("data", "mine") {
		t.Errorf("EnsureDir called with %v, want parent of log path", store.dirs)
	}

	lines := store.lines[path]
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	var got types.Entry
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if got != entry {
		t.Errorf("round-tripped entry = %+v, want %+v", got, entry)
	}
}

func TestRecordStorageError(t *testing.T) {
	store := newMemStore()
	store.fail = fmt.Errorf("disk full")

	err := Record(store, "data/mine/command_log.jsonl", types.Entry{Command: "build"})
	if err == nil {
		t.Fatal("expected error when store fails")
	}
	if len(store.lines) != 0 {
		t.Error("no line should be written on failure")
	}
}

func TestFileStoreAppendsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine", "command_log.jsonl")
	store := FileStore{}

	entries := []types.Entry{
		{Command: "build", Timestamp: "2024-01-01T00:00:00Z", ArgsCount: 1, FlagsCount: 1},
		{Command: "todo.add", Timestamp: "2024-01-02T00:00:00Z", ArgsCount: 2, FlagsCount: 0},
	}

	for _, e := range entries {
		if err := Record(store, path, e); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Error("log file should end with a newline")
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	for i, line := range lines {
		var got types.Entry
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("line %d is not independently parseable: %v", i, err)
		}
		if got != entries[i] {
			t.Errorf("line %d = %+v, want %+v", i, got, entries[i])
		}
	}
}

func TestFileStoreCreatesMissingParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deeply", "nested", "mine", "command_log.jsonl")

	if err := Record(FileStore{}, path, types.Entry{Command: "build"}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent directory should exist after recording: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file should exist after recording: %v", err)
	}
}

func TestFileStoreSurfacesWriteFailure(t *testing.T) {
	// /dev/full accepts the open but fails every write with ENOSPC.
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	err := FileStore{}.AppendLine("/dev/full", []byte(`{"command":"build"}`))
	if err == nil {
		t.Fatal("expected write failure to surface as an error")
	}
	if !strings.Contains(err.Error(), "failed to write log entry") {
		t.Errorf("error %q should come from the write path", err)
	}
}

func TestFileStoreFileOccupiesDirSegment(t *testing.T) {
	dir := t.TempDir()

	// A file sits where a directory is expected.
	blocker := filepath.Join(dir, "mine")
	if err := os.WriteFile(blocker, []byte("in the way"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	path := filepath.Join(blocker, "command_log.jsonl")
	if err := Record(FileStore{}, path, types.Entry{Command: "build"}); err == nil {
		t.Error("expected storage error when a file occupies a directory segment")
	}
}
