package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/skillsheet/pkg/manifest"
)

// Workspace represents the user's skillsheet directories
type Workspace struct {
	RootPath     string
	DataPath     string
	ExportPath   string
	ConfigPath   string
	SettingsPath string
}

// New creates a new Workspace instance with XDG-compliant paths
func New() (*Workspace, error) {
	rootPath, rootErr := getDataRoot()
	configDir, configErr := getConfigDir()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine data root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Workspace{
		RootPath:     rootPath,
		DataPath:     filepath.Join(rootPath, "kof97"),
		ExportPath:   filepath.Join(rootPath, "exports"),
		ConfigPath:   filepath.Join(configDir, "config.yaml"),
		SettingsPath: filepath.Join(configDir, "settings.yaml"),
	}, nil
}

// getDataRoot follows the XDG Base Directory specification on Unix and uses
// AppData on Windows
func getDataRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "skillsheet"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "skillsheet"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "skillsheet"), nil
}

func getConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "skillsheet"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "skillsheet-config"), nil
	}

	return filepath.Join(homeDir, ".config", "skillsheet"), nil
}

// Initialize creates the directory structure if it doesn't exist
func (w *Workspace) Initialize() error {
	directories := []string{
		w.RootPath,
		w.DataPath,
		w.ExportPath,
		filepath.Dir(w.ConfigPath),
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ManifestPath returns the manifest of the local roster copy
func (w *Workspace) ManifestPath() string {
	return filepath.Join(w.DataPath, manifest.FileName)
}

// HasRoster reports whether a local roster manifest exists
func (w *Workspace) HasRoster() bool {
	_, err := os.Stat(w.ManifestPath())
	return err == nil
}

// GetDataPath returns the full path for a character record
func (w *Workspace) GetDataPath(filename string) string {
	return filepath.Join(w.DataPath, filename)
}

// GetExportPath returns the full path for an exported file
func (w *Workspace) GetExportPath(filename string) string {
	return filepath.Join(w.ExportPath, filename)
}

// CleanExports removes all files in the export directory
func (w *Workspace) CleanExports() error {
	entries, err := os.ReadDir(w.ExportPath)
	if err != nil {
		return fmt.Errorf("failed to read export directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(w.ExportPath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
