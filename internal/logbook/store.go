package logbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minehq/minehook/pkg/types"
)

// Store is the narrow storage capability the recorder needs. Tests substitute
// an in-memory implementation instead of touching real paths.
type Store interface {
	// EnsureDir creates dir and any missing parents; it must succeed when
	// the directory already exists.
	EnsureDir(dir string) error

	// AppendLine appends line plus a trailing newline to the file at path,
	// creating the file if absent. The write is flushed before return.
	AppendLine(path string, line []byte) error
}

// FileStore implements Store against the real filesystem.
type FileStore struct{}

var _ Store = FileStore{}

// EnsureDir creates the directory and any missing parents.
func (FileStore) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory; %w", err)
	}
	return nil
}

// AppendLine appends to the file in O_APPEND mode. The entry and newline go
// out in a single write call so concurrent hook processes interleave at line
// granularity only.
func (FileStore) AppendLine(path string, line []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file; %w", err)
	}

	record := make([]byte, 0, len(line)+1)
	record = append(record, line...)
	record = append(record, '\n')

	_, err = file.Write(record)

	// Some filesystems report a write failure only at close; a successful
	// append requires both to succeed.
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write log entry; %w", err)
	}

	return nil
}

// Record serializes entry and appends it to the log at path, creating parent
// directories as needed. The entry is immutable once written.
func Record(store Store, path string, entry types.Entry) error {
	if err := store.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry; %w", err)
	}

	return store.AppendLine(path, line)
}
