package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/skillsheet/pkg/settings"
)

// FileSettingsRepository stores settings as a yaml file
type FileSettingsRepository struct {
	path string
	mu   sync.RWMutex
}

// NewFileSettingsRepository creates a repository backed by path
func NewFileSettingsRepository(path string) *FileSettingsRepository {
	return &FileSettingsRepository{path: path}
}

// Path returns the settings file location
func (r *FileSettingsRepository) Path() string {
	return r.path
}

// Load reads the settings file. A missing file yields empty settings.
func (r *FileSettingsRepository) Load(ctx context.Context) (settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s settings.Settings
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// Save writes the settings file, creating its directory
func (r *FileSettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return os.Rename(tmp, r.path)
}

var _ settings.Repository = (*FileSettingsRepository)(nil)
