// Package prefs persists the small bits of UI state worth keeping between
// runs: the chosen language and the preferred transaction page size.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Preferences is the saved UI state.
type Preferences struct {
	Language          string `json:"language,omitempty"`
	TransactionsLimit int    `json:"transactions_limit,omitempty"`
}

// Store reads and writes preferences under the user config directory.
type Store struct {
	filePath string
	Prefs    Preferences
}

// NewStore creates the store, loading existing preferences if present.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "findash")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	store := &Store{
		filePath: filepath.Join(configDir, "preferences.json"),
	}

	if _, err := os.Stat(store.filePath); err == nil {
		if err := store.Load(); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Load reads preferences from disk.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read preferences file: %w", err)
	}

	if err := json.Unmarshal(data, &s.Prefs); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	return nil
}

// Save writes preferences to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.Prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	return nil
}

// SetLanguage records the chosen language and saves immediately.
func (s *Store) SetLanguage(lang string) error {
	s.Prefs.Language = lang
	return s.Save()
}
