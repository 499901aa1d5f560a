package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/skillsheet/pkg/settings"
)

func TestFileSettingsRepository_MissingFile(t *testing.T) {
	repo := NewFileSettingsRepository(filepath.Join(t.TempDir(), "settings.yaml"))

	s, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s != (settings.Settings{}) {
		t.Errorf("expected empty settings, got %+v", s)
	}
}

func TestFileSettingsRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	repo := NewFileSettingsRepository(path)
	ctx := context.Background()

	want := settings.Settings{ColorScheme: settings.ColorSchemeDark, PrimaryColor: settings.PrimaryTomatoOrange}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}
}

func TestFileSettingsRepository_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("color_scheme: [dark"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileSettingsRepository(path).Load(context.Background()); err == nil {
		t.Error("Expected error for invalid yaml")
	}
}

func TestFileSettingsRepository_WithStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	ctx := context.Background()

	store, err := settings.NewStore(ctx, NewFileSettingsRepository(path))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Update(ctx, func(s *settings.Settings) error {
		return s.SetField("nav_color", "discrete")
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	reopened, err := settings.NewStore(ctx, NewFileSettingsRepository(path))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if reopened.Get().NavColor != settings.NavColorDiscrete {
		t.Errorf("NavColor = %q, want discrete", reopened.Get().NavColor)
	}
}
