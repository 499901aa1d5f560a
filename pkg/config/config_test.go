package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamal-hamza/skillsheet/pkg/assets"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.CDN.BaseURL != "" {
		t.Errorf("expected CDN disabled by default, got %q", cfg.CDN.BaseURL)
	}

	if len(cfg.CDN.IncludePaths) != 1 || cfg.CDN.IncludePaths[0] != "assets/kof97/**" {
		t.Errorf("expected default include [assets/kof97/**], got %v", cfg.CDN.IncludePaths)
	}

	if len(cfg.CDN.ExcludePaths) != 0 {
		t.Errorf("expected no default excludes, got %v", cfg.CDN.ExcludePaths)
	}

	if cfg.BasePath != "/" {
		t.Errorf("expected default BasePath='/', got %q", cfg.BasePath)
	}

	if cfg.PageSize != 6 || cfg.SkillsPageSize != 3 {
		t.Errorf("expected page sizes 6 and 3, got %d and %d", cfg.PageSize, cfg.SkillsPageSize)
	}

	if cfg.Sprite.Width != 3306 || cfg.Sprite.Height != 1638 {
		t.Errorf("unexpected sprite sheet size %vx%v", cfg.Sprite.Width, cfg.Sprite.Height)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.BasePath != "/" {
		t.Errorf("expected default BasePath='/', got %q", cfg.BasePath)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.CDN.BaseURL = "https://cdn.example.com"
	cfg.CDN.ExcludePaths = []string{"placeholder"}
	cfg.BasePath = "/skill-sheet/"
	cfg.Editor = "vim"
	cfg.Aliases["kyo"] = "草薙京"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loadedCfg.CDN.BaseURL != cfg.CDN.BaseURL {
		t.Errorf("BaseURL: expected %q, got %q", cfg.CDN.BaseURL, loadedCfg.CDN.BaseURL)
	}
	if loadedCfg.BasePath != cfg.BasePath {
		t.Errorf("BasePath: expected %q, got %q", cfg.BasePath, loadedCfg.BasePath)
	}
	if loadedCfg.Editor != cfg.Editor {
		t.Errorf("Editor: expected %q, got %q", cfg.Editor, loadedCfg.Editor)
	}
	if loadedCfg.Aliases["kyo"] != "草薙京" {
		t.Errorf("Aliases: expected kyo=草薙京, got %v", loadedCfg.Aliases)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Partial config: page sizes and sprite omitted
	yamlContent := `cdn:
  base_url: https://cdn.example.com
editor: nvim
page_size: 0
skills_page_size: -2
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.PageSize != 6 {
		t.Errorf("expected default PageSize=6 for zero value, got %d", cfg.PageSize)
	}
	if cfg.SkillsPageSize != 3 {
		t.Errorf("expected default SkillsPageSize=3 for negative value, got %d", cfg.SkillsPageSize)
	}
	if cfg.CDN.ExcludeMatch != "substring" {
		t.Errorf("expected default ExcludeMatch='substring', got %q", cfg.CDN.ExcludeMatch)
	}
	if cfg.Sprite.Image != "/assets/kof97/avatar-spire.png" {
		t.Errorf("unexpected sprite image %q", cfg.Sprite.Image)
	}
	if cfg.Aliases == nil {
		t.Error("Aliases should be initialized")
	}

	// Should preserve specified values
	if cfg.CDN.BaseURL != "https://cdn.example.com" {
		t.Errorf("expected BaseURL preserved, got %q", cfg.CDN.BaseURL)
	}
	if cfg.Editor != "nvim" {
		t.Errorf("expected Editor='nvim', got %q", cfg.Editor)
	}
	if len(cfg.CDN.IncludePaths) != 1 {
		t.Errorf("expected default include paths kept, got %v", cfg.CDN.IncludePaths)
	}
}

func TestLoad_EmptyIncludeList(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	yamlContent := `cdn:
  include_paths: []
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// An explicit empty list means "every path"
	if len(cfg.CDN.IncludePaths) != 0 {
		t.Errorf("expected empty include list, got %v", cfg.CDN.IncludePaths)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	yamlContent := `base_path: /
cdn: [invalid yaml structure
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error loading invalid YAML, got nil")
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "dir", "config.yaml")

	cfg := DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if !strings.Contains(string(data), "assets/kof97/**") {
		t.Error("config file should contain the default include pattern")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvCDNBaseURL: "https://cdn.example.com",
		EnvBasePath:   "/skill-sheet/",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	cfg.IndexHTML = "dist/index.html"
	cfg.ApplyEnv(lookup)

	if cfg.CDN.BaseURL != "https://cdn.example.com" {
		t.Errorf("BaseURL = %q", cfg.CDN.BaseURL)
	}
	if cfg.BasePath != "/skill-sheet/" {
		t.Errorf("BasePath = %q", cfg.BasePath)
	}
	if cfg.IndexHTML != "dist/index.html" {
		t.Errorf("IndexHTML should be untouched, got %q", cfg.IndexHTML)
	}
}

func TestApplyEnv_EmptyBaseURLDisablesCDN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CDN.BaseURL = "https://cdn.example.com"
	cfg.ApplyEnv(func(k string) (string, bool) {
		if k == EnvCDNBaseURL {
			return "", true
		}
		return "", false
	})

	if cfg.CDN.BaseURL != "" {
		t.Errorf("expected CDN disabled, got %q", cfg.CDN.BaseURL)
	}
}

func TestLoadDotEnv(t *testing.T) {
	tempDir := t.TempDir()
	envPath := filepath.Join(tempDir, ".env")
	if err := os.WriteFile(envPath, []byte(EnvBasePath+"=/from-dotenv/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvBasePath, "")
	os.Unsetenv(EnvBasePath)

	if err := LoadDotEnv(filepath.Join(tempDir, "missing.env"), envPath); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv(EnvBasePath); got != "/from-dotenv/" {
		t.Errorf("%s = %q, want /from-dotenv/", EnvBasePath, got)
	}

	if err := LoadDotEnv(filepath.Join(tempDir, "none.env")); err != nil {
		t.Errorf("missing env files should be ignored, got %v", err)
	}
}

func TestRouting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CDN.BaseURL = "https://cdn.example.com"
	cfg.CDN.ExcludeMatch = "glob"

	r := cfg.Routing()
	if r.BaseURL != cfg.CDN.BaseURL || r.ExcludeMode != assets.ExcludeGlob {
		t.Errorf("unexpected routing %+v", r)
	}

	got := assets.NewResolver(r, nil).Resolve("/assets/kof97/草薙京/1.jpg")
	if got != "https://cdn.example.com/kof97/草薙京/1.jpg" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveAlias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Aliases["kyo"] = "草薙京"

	tests := []struct {
		input    string
		expected string
	}{
		{"kyo", "草薙京"},
		{"KYO", "草薙京"},
		{"草薙京", "草薙京"},
		{"iori", "iori"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := cfg.ResolveAlias(tt.input); got != tt.expected {
				t.Errorf("ResolveAlias(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{"defaults are clean", func(c *Config) {}, ""},
		{"blank base url", func(c *Config) { c.CDN.BaseURL = "   " }, "blank"},
		{"missing scheme", func(c *Config) { c.CDN.BaseURL = "cdn.example.com" }, "no scheme"},
		{"empty substring exclude", func(c *Config) { c.CDN.ExcludePaths = []string{""} }, "excludes every path"},
		{"wildcard substring exclude", func(c *Config) { c.CDN.ExcludePaths = []string{"*.gif"} }, "substring"},
		{"unknown exclude mode", func(c *Config) { c.CDN.ExcludeMatch = "regex" }, "unknown"},
		{"relative base path", func(c *Config) { c.BasePath = "skill-sheet/" }, "should start with /"},
		{"missing index html", func(c *Config) { c.IndexHTML = "/nonexistent/index.html" }, "not readable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			warnings := cfg.Validate()

			if tt.contains == "" {
				if len(warnings) != 0 {
					t.Errorf("expected no warnings, got %v", warnings)
				}
				return
			}

			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.contains) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.contains, warnings)
			}
		})
	}
}
