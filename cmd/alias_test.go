package cmd

import (
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/skillsheet/pkg/config"
)

func TestValidateAliasName(t *testing.T) {
	tests := []struct {
		name      string
		aliasName string
		wantError bool
	}{
		{
			name:      "valid simple name",
			aliasName: "kyo",
			wantError: false,
		},
		{
			name:      "valid with dash",
			aliasName: "iori-97",
			wantError: false,
		},
		{
			name:      "valid with underscore",
			aliasName: "big_goro",
			wantError: false,
		},
		{
			name:      "empty name",
			aliasName: "",
			wantError: true,
		},
		{
			name:      "name with spaces",
			aliasName: "kyo k",
			wantError: true,
		},
		{
			name:      "name starting with dash",
			aliasName: "-kyo",
			wantError: true,
		},
		{
			name:      "name with special characters",
			aliasName: "kyo@97",
			wantError: true,
		},
		{
			name:      "cjk name",
			aliasName: "京",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAliasName(tt.aliasName)
			if tt.wantError && err == nil {
				t.Errorf("validateAliasName(%q) expected error, got nil", tt.aliasName)
			}
			if !tt.wantError && err != nil {
				t.Errorf("validateAliasName(%q) unexpected error: %v", tt.aliasName, err)
			}
		})
	}
}

func TestIsValidAliasChar(t *testing.T) {
	tests := []struct {
		name  string
		char  rune
		valid bool
	}{
		{"lowercase letter", 'a', true},
		{"uppercase letter", 'Z', true},
		{"digit", '5', true},
		{"dash", '-', true},
		{"underscore", '_', true},
		{"space", ' ', false},
		{"at sign", '@', false},
		{"slash", '/', false},
		{"period", '.', false},
		{"han", '草', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isValidAliasChar(tt.char)
			if got != tt.valid {
				t.Errorf("isValidAliasChar(%q) = %v, want %v", tt.char, got, tt.valid)
			}
		})
	}
}

func TestIsReservedName(t *testing.T) {
	roster := []string{"草薙京", "Terry"}

	tests := []struct {
		name     string
		alias    string
		reserved bool
	}{
		{"character name", "terry", true},
		{"exact character name", "Terry", true},
		{"free alias", "kyo", false},
		{"empty roster entry does not match", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReservedName(tt.alias, roster); got != tt.reserved {
				t.Errorf("isReservedName(%q) = %v, want %v", tt.alias, got, tt.reserved)
			}
		})
	}
}

func TestAliasRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.DefaultConfig()
	cfg.Aliases["kyo"] = "草薙京"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if got := loaded.ResolveAlias("Kyo"); got != "草薙京" {
		t.Errorf("ResolveAlias(Kyo) = %q, want 草薙京", got)
	}
}

func TestCharacterName(t *testing.T) {
	saved := appConfig
	defer func() { appConfig = saved }()

	appConfig = config.DefaultConfig()
	appConfig.Aliases["iori"] = "八神庵"

	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"iori"}, "八神庵"},
		{[]string{"  草薙京 "}, "草薙京"},
		{[]string{"Terry", "Bogard"}, "Terry Bogard"},
	}

	for _, tt := range tests {
		if got := characterName(tt.args); got != tt.want {
			t.Errorf("characterName(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
