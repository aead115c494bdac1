// Package history persists a record of past invocations.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/runx/core/runner"
)

// Record is one past invocation.
type Record struct {
	ID      string    `yaml:"id"`
	Mode    string    `yaml:"mode"` // run, exec or ssh
	Command string    `yaml:"command"`
	Success bool      `yaml:"success"`
	Message string    `yaml:"message,omitempty"`
	When    time.Time `yaml:"when"`
}

// Store reads and appends invocation records in a YAML file.
type Store struct {
	path string
}

// DefaultPath returns the default history file path
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".runx/history.yaml"
	}
	return filepath.Join(home, ".runx", "history.yaml")
}

// NewStore creates a store backed by the given file
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append records an invocation and returns the stored record.
func (s *Store) Append(mode, command string, res runner.Result) (Record, error) {
	records, err := s.load()
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:      uuid.NewString(),
		Mode:    mode,
		Command: command,
		Success: res.Success,
		Message: res.Message,
		When:    time.Now(),
	}
	records = append(records, rec)

	if err := s.save(records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns up to limit most recent records, oldest first. A limit
// of zero or less returns everything.
func (s *Store) List(limit int) ([]Record, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

// Clear removes all records
func (s *Store) Clear() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *Store) load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return records, nil
}

func (s *Store) save(records []Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
