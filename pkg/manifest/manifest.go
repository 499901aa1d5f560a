package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is the manifest format written by Generate.
const Version = 1

// FileName is the manifest name used inside a data directory.
const FileName = "manifest.yaml"

// ErrUnsafePath is returned for entries that escape the manifest directory.
var ErrUnsafePath = errors.New("unsafe manifest entry")

// Manifest lists the character records of a roster, relative to the
// directory holding the manifest.
type Manifest struct {
	Version int      `yaml:"version"`
	Files   []string `yaml:"files"`
}

// Generate lists every *.json file below dir in fsys, sorted.
func Generate(fsys fs.FS, dir string) (*Manifest, error) {
	if dir == "" {
		dir = "."
	}

	var files []string
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) != ".json" {
			return nil
		}

		rel := strings.TrimPrefix(p, dir+"/")
		if dir == "." {
			rel = p
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Strings(files)
	return &Manifest{Version: Version, Files: files}, nil
}

// Parse decodes and validates a manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the manifest name from fsys.
func Load(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Validate cleans every entry in place and rejects the ones outside the
// manifest directory.
func (m *Manifest) Validate() error {
	var errs []error
	for i, f := range m.Files {
		clean, err := CleanEntry(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m.Files[i] = clean
	}
	return errors.Join(errs...)
}

// Save writes the manifest as yaml, creating parent directories.
func (m *Manifest) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Resolve returns the fs path of entry for a manifest stored at name.
func Resolve(name, entry string) string {
	return path.Join(path.Dir(name), entry)
}

// CleanEntry normalizes a manifest entry to a slash-separated relative path.
func CleanEntry(entry string) (string, error) {
	p := strings.TrimSpace(strings.ReplaceAll(entry, "\\", "/"))
	if p == "" {
		return "", fmt.Errorf("%w: empty entry", ErrUnsafePath)
	}
	if path.IsAbs(p) || filepath.IsAbs(p) {
		return "", fmt.Errorf("%w: %s is absolute", ErrUnsafePath, entry)
	}

	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, entry)
	}
	return clean, nil
}
