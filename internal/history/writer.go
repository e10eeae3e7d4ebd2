package history

import (
	"fmt"
	"os"
	"time"
)

// Writer provides run history logging with automatic pruning.
type Writer struct {
	// StateDir is the directory containing the history file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain.
	MaxEntries int
}

// NewWriter creates a new history writer.
func NewWriter(stateDir string, maxEntries int) *Writer {
	return &Writer{StateDir: stateDir, MaxEntries: maxEntries}
}

// LogEntry appends an entry, pruning the oldest ones past MaxEntries.
// Errors are non-fatal: they go to stderr and never fail a generation.
func (w *Writer) LogEntry(entry Entry) {
	if err := w.logEntry(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to log history: %v\n", err)
	}
}

func (w *Writer) logEntry(entry Entry) error {
	hist, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	hist.Entries = append(hist.Entries, entry)

	// Prune oldest entries if over limit
	if w.MaxEntries > 0 && len(hist.Entries) > w.MaxEntries {
		excess := len(hist.Entries) - w.MaxEntries
		hist.Entries = hist.Entries[excess:]
	}

	if err := Save(w.StateDir, hist); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// WriteStart records a run with 'running' status and returns its generated
// ID for a later UpdateComplete call.
func (w *Writer) WriteStart(project, dir, provider, model string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", fmt.Errorf("generating history ID: %w", err)
	}

	entry := Entry{
		ID:        id,
		Project:   project,
		Dir:       dir,
		Provider:  provider,
		Model:     model,
		Status:    StatusRunning,
		CreatedAt: time.Now(),
	}
	if err := w.logEntry(entry); err != nil {
		return "", fmt.Errorf("writing start entry: %w", err)
	}
	return id, nil
}

// UpdateComplete finalizes a running entry with its outcome. It returns an
// error if no entry with the given ID exists.
func (w *Writer) UpdateComplete(id, status string, files int, runErr error, duration time.Duration) error {
	hist, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history for update: %w", err)
	}

	found := false
	for i := range hist.Entries {
		if hist.Entries[i].ID != id {
			continue
		}
		now := time.Now()
		hist.Entries[i].Status = status
		hist.Entries[i].Files = files
		hist.Entries[i].Duration = duration.String()
		hist.Entries[i].CompletedAt = &now
		if runErr != nil {
			hist.Entries[i].Error = runErr.Error()
		}
		found = true
		break
	}
	if !found {
		return fmt.Errorf("entry not found with ID: %s", id)
	}

	if err := Save(w.StateDir, hist); err != nil {
		return fmt.Errorf("saving updated history: %w", err)
	}
	return nil
}
