package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kamal-hamza/skillsheet/internal/core/ports"
	"github.com/kamal-hamza/skillsheet/pkg/manifest"
)

// ManifestSource reads the records listed by a manifest stored in fsys.
type ManifestSource struct {
	fsys     fs.FS
	manifest string
	logger   *zap.Logger
}

// NewManifestSource creates a source for the manifest at name inside fsys.
func NewManifestSource(fsys fs.FS, name string, logger *zap.Logger) *ManifestSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManifestSource{fsys: fsys, manifest: name, logger: logger}
}

// FromFile opens a manifest on disk; its entries resolve against its directory.
func FromFile(filename string, logger *zap.Logger) (*ManifestSource, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	return NewManifestSource(os.DirFS(filepath.Dir(abs)), filepath.Base(abs), logger), nil
}

// Name returns the manifest path inside the source filesystem.
func (s *ManifestSource) Name() string {
	return s.manifest
}

// Modules loads the manifest and reads every listed record. A listed file
// that cannot be read is logged and left out.
func (s *ManifestSource) Modules(ctx context.Context) ([]ports.Module, error) {
	m, err := manifest.Load(s.fsys, s.manifest)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(m.Files))
	for i, f := range m.Files {
		paths[i] = manifest.Resolve(s.manifest, f)
	}

	s.logger.Debug("manifest loaded", zap.String("manifest", s.manifest), zap.Int("files", len(paths)))
	return readModules(ctx, s.fsys, paths, s.logger)
}

// DirSource scans a directory for *.json records when no manifest exists.
type DirSource struct {
	fsys   fs.FS
	dir    string
	logger *zap.Logger
}

// NewDirSource creates a source over every *.json file below dir.
func NewDirSource(fsys fs.FS, dir string, logger *zap.Logger) *DirSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirSource{fsys: fsys, dir: dir, logger: logger}
}

// Modules reads the directory in sorted order.
func (s *DirSource) Modules(ctx context.Context) ([]ports.Module, error) {
	m, err := manifest.Generate(s.fsys, s.dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(m.Files))
	for i, f := range m.Files {
		paths[i] = path.Join(s.dir, f)
	}
	return readModules(ctx, s.fsys, paths, s.logger)
}

func readModules(ctx context.Context, fsys fs.FS, paths []string, logger *zap.Logger) ([]ports.Module, error) {
	modules := make([]ports.Module, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			logger.Warn("skipping unreadable record", zap.String("path", p), zap.Error(err))
			continue
		}
		modules = append(modules, ports.Module{Path: p, Data: data})
	}
	return modules, nil
}

var (
	_ ports.ModuleSource = (*ManifestSource)(nil)
	_ ports.ModuleSource = (*DirSource)(nil)
)
