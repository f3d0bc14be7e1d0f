package logbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/minehq/minehook/pkg/types"
)

// CommandCount is the number of logged invocations for one command.
type CommandCount struct {
	Command string
	Count   int
}

// Tail returns the last n entries of the log at path, oldest first.
// A missing log file yields no entries. Lines that fail to parse are skipped
// so a single corrupt record doesn't hide the rest of the log.
func Tail(path string, n int) ([]types.Entry, error) {
	entries, err := readAll(path)
	if err != nil {
		return nil, err
	}

	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Stats aggregates the log into per-command invocation counts, sorted by
// count descending, then command name. The second return is the total number
// of entries.
func Stats(path string) ([]CommandCount, int, error) {
	entries, err := readAll(path)
	if err != nil {
		return nil, 0, err
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Command]++
	}

	out := make([]CommandCount, 0, len(counts))
	for command, count := range counts {
		out = append(out, CommandCount{Command: command, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Command < out[j].Command
	})

	return out, len(entries), nil
}

func readAll(path string) ([]types.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open log file; %w", err)
	}
	defer file.Close()

	var entries []types.Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry types.Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file; %w", err)
	}

	return entries, nil
}
