// Package history provides generation run history storage and retrieval.
// It backs the `recent` command and the dashboard project list.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// FileName is the name of the history file inside the state directory.
	FileName = "history.json"
	// BackupSuffix is the suffix for backup files when corruption is detected.
	BackupSuffix = ".backup"
)

// Status constants for history entries.
const (
	// StatusRunning indicates the generation is currently executing.
	StatusRunning = "running"
	// StatusCompleted indicates the generation finished successfully.
	StatusCompleted = "completed"
	// StatusFailed indicates the generation finished with an error.
	StatusFailed = "failed"
)

// Entry represents a single generation run record.
type Entry struct {
	// ID is a unique identifier, hex_YYYYMMDD_HHMMSS format.
	ID string `json:"id"`
	// Project is the project name (directory base name).
	Project string `json:"project"`
	// Dir is the absolute or configured-relative project directory.
	Dir string `json:"dir"`
	// Provider and Model record which backend produced the completion.
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	// Status is the current state: running, completed, failed.
	Status string `json:"status"`
	// Files is the number of materialized files (0 while running or failed).
	Files int `json:"files"`
	// CreatedAt is when the run started.
	CreatedAt time.Time `json:"created_at"`
	// CompletedAt is when the run finished (nil while running).
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Duration is the run duration in Go duration format.
	Duration string `json:"duration,omitempty"`
	// Error holds the failure message for failed runs.
	Error string `json:"error,omitempty"`
}

// File represents the JSON file containing all history entries.
type File struct {
	// Entries is ordered oldest first; new entries are appended.
	Entries []Entry `json:"entries"`
}

// Load reads the history file from the given state directory. A missing
// file yields empty history; a corrupted file is backed up and replaced.
func Load(stateDir string) (*File, error) {
	historyPath := filepath.Join(stateDir, FileName)

	data, err := os.ReadFile(historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{Entries: []Entry{}}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var hist File
	if err := json.Unmarshal(data, &hist); err != nil {
		if backupErr := os.Rename(historyPath, historyPath+BackupSuffix); backupErr != nil {
			return nil, fmt.Errorf("backing up corrupted history file: %w", backupErr)
		}
		return &File{Entries: []Entry{}}, nil
	}
	if hist.Entries == nil {
		hist.Entries = []Entry{}
	}
	return &hist, nil
}

// Save writes the history file atomically, creating the state directory
// if needed.
func Save(stateDir string, hist *File) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(hist, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	historyPath := filepath.Join(stateDir, FileName)
	tmpPath := historyPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing temp history file: %w", err)
	}
	if err := os.Rename(tmpPath, historyPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp history file: %w", err)
	}
	return nil
}

// Clear removes all entries from the history file.
func Clear(stateDir string) error {
	return Save(stateDir, &File{Entries: []Entry{}})
}
