package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the persisted configuration file (gitdaily.toml).
type Settings struct {
	Update UpdateSettings `toml:"update"`
}

// UpdateSettings controls the self-update check.
type UpdateSettings struct {
	Enabled   bool      `toml:"enabled"`
	LastCheck time.Time `toml:"last_check"`
	Repo      string    `toml:"repo"`
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() *Settings {
	return &Settings{
		Update: UpdateSettings{
			Enabled: true,
			Repo:    "wahlandcase/attuned.gitdaily",
		},
	}
}

func settingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gitdaily.toml"), nil
}

// LoadSettings reads the settings file, creating it with defaults if missing.
func LoadSettings() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s := DefaultSettings()
			_ = s.Save() // Best effort save
			return s, nil
		}
		return nil, err
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings file, creating the config directory if needed.
func (s *Settings) Save() error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (s *Settings) ShouldCheckForUpdate() bool {
	if !s.Update.Enabled {
		return false
	}
	return time.Since(s.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (s *Settings) RecordUpdateCheck() {
	s.Update.LastCheck = time.Now()
}
