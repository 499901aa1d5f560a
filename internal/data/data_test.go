package data_test

import (
	"context"
	"testing"

	"github.com/kamal-hamza/skillsheet/internal/adapters/source"
	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/internal/data"
	"github.com/kamal-hamza/skillsheet/pkg/manifest"
	"github.com/kamal-hamza/skillsheet/pkg/sprite"
)

func TestManifestListsEveryRecord(t *testing.T) {
	listed, err := manifest.Load(data.FS, data.Manifest)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	generated, err := manifest.Generate(data.FS, "kof97")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(listed.Files) != len(generated.Files) {
		t.Fatalf("manifest lists %d files, directory has %d", len(listed.Files), len(generated.Files))
	}
	for i := range listed.Files {
		if listed.Files[i] != generated.Files[i] {
			t.Errorf("entry %d = %q, want %q", i, listed.Files[i], generated.Files[i])
		}
	}
}

func TestBundledRoster(t *testing.T) {
	src := source.NewManifestSource(data.FS, data.Manifest, nil)
	resp, err := services.NewRosterService(src, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(resp.Skipped) != 0 {
		t.Errorf("bundled records should all decode, skipped %v", resp.Skipped)
	}
	if resp.Total != 5 {
		t.Errorf("Total = %d, want 5", resp.Total)
	}

	sheet := sprite.DefaultSheet()
	for _, c := range resp.Characters {
		if len(c.Skills) == 0 {
			t.Errorf("%s has no skills", c.Name)
		}
		if c.Avatar.HasSprite() {
			if err := sheet.Validate(*c.Avatar.Sprite); err != nil {
				t.Errorf("%s sprite out of bounds: %v", c.Name, err)
			}
		}
	}
}
