package systems

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	cfg "github.com/redfox/tatakai/config"
)

const settingsKey = "settings"

// SettingsStore is the subset of gdata.Manager used for settings.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence opens the gdata storage for settings
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	settingsStore = m
	return nil
}

// UseSettingsStore replaces the storage backend.
func UseSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk, falling back to defaults when
// storage is unavailable or nothing was saved yet.
func LoadSettings() (cfg.Settings, error) {
	settings := cfg.DefaultSettings()
	if settingsStore == nil {
		return settings, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return cfg.DefaultSettings(), fmt.Errorf("parse saved settings: %w", err)
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s cfg.Settings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	log.Debug("settings saved", "arena", s.ArenaIndex, "colliders", s.ShowColliders)
	return nil
}
