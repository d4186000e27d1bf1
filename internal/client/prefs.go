package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs is the identity remembered between sessions.
type Prefs struct {
	Name   string `yaml:"name,omitempty"`
	Email  string `yaml:"email,omitempty"`
	UserID string `yaml:"user_id,omitempty"`
}

// DefaultPrefsPath is chatctl/prefs.yaml under the user config directory.
func DefaultPrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "chatctl", "prefs.yaml"), nil
}

// LoadPrefs reads path. A missing file yields empty prefs.
func LoadPrefs(path string) (*Prefs, error) {
	p := &Prefs{}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path, creating the directory if needed.
func (p *Prefs) Save(path string) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
