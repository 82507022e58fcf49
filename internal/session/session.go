// Package session remembers where the editor was pointed last time.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type State struct {
	SaveDir    string `yaml:"save_dir"`
	Slot       int    `yaml:"slot,omitempty"`
	Difficulty int    `yaml:"difficulty"`
}

// Store keeps State in a YAML file under Dir.
type Store struct {
	Dir string
}

// DefaultStore places the session in the user's config directory.
func DefaultStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Store{Dir: filepath.Join(configDir, "ultrakill-save-editor")}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.Dir, "session.yaml")
}

func (s *Store) Save(state State) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return os.WriteFile(s.path(), data, 0o644)
}

// Load returns the remembered state. A missing file is an empty state.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}
	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to parse session: %w", err)
	}
	return state, nil
}

func (s *Store) Reset() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
