package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/skillsheet/pkg/assets"
	"github.com/kamal-hamza/skillsheet/pkg/sprite"
)

// Environment variables that override the config file.
const (
	EnvCDNBaseURL = "SKILLSHEET_CDN_BASE_URL"
	EnvBasePath   = "SKILLSHEET_BASE_PATH"
	EnvIndexHTML  = "SKILLSHEET_INDEX_HTML"
)

// CDNConfig routes selected asset paths to a CDN origin
type CDNConfig struct {
	BaseURL      string   `yaml:"base_url"`
	IncludePaths []string `yaml:"include_paths"`
	ExcludePaths []string `yaml:"exclude_paths"`
	ExcludeMatch string   `yaml:"exclude_match"`
}

// DataConfig selects the roster to load
type DataConfig struct {
	Manifest string `yaml:"manifest"`
	Dir      string `yaml:"dir"`
}

// SpriteConfig describes the shared avatar sprite sheet
type SpriteConfig struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Config struct {
	CDN       CDNConfig    `yaml:"cdn"`
	BasePath  string       `yaml:"base_path"`
	IndexHTML string       `yaml:"index_html"`
	Data      DataConfig   `yaml:"data"`
	Sprite    SpriteConfig `yaml:"sprite"`

	// Browsing
	PageSize       int               `yaml:"page_size"`
	SkillsPageSize int               `yaml:"skills_page_size"`
	Aliases        map[string]string `yaml:"aliases"`

	// UI Settings
	Editor     string `yaml:"editor"`
	ColorTheme string `yaml:"color_theme"`
	TableWidth int    `yaml:"table_width"`

	// Performance
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		CDN: CDNConfig{
			BaseURL:      "",
			IncludePaths: []string{"assets/kof97/**"},
			ExcludePaths: []string{},
			ExcludeMatch: string(assets.ExcludeSubstring),
		},
		BasePath:  "/",
		IndexHTML: "",
		Sprite: SpriteConfig{
			Image:  sprite.DefaultImage,
			Width:  sprite.DefaultWidth,
			Height: sprite.DefaultHeight,
		},
		PageSize:        6,
		SkillsPageSize:  3,
		Aliases:         make(map[string]string),
		Editor:          "",
		ColorTheme:      "auto",
		TableWidth:      0,
		WatchDebounceMS: 500,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing file is not an error
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()

	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	if c.CDN.ExcludeMatch == "" {
		c.CDN.ExcludeMatch = d.CDN.ExcludeMatch
	}
	if c.BasePath == "" {
		c.BasePath = d.BasePath
	}
	if c.Sprite.Image == "" {
		c.Sprite.Image = d.Sprite.Image
	}
	if c.Sprite.Width <= 0 {
		c.Sprite.Width = d.Sprite.Width
	}
	if c.Sprite.Height <= 0 {
		c.Sprite.Height = d.Sprite.Height
	}
	if c.PageSize <= 0 {
		c.PageSize = d.PageSize
	}
	if c.SkillsPageSize <= 0 {
		c.SkillsPageSize = d.SkillsPageSize
	}
	if c.ColorTheme == "" {
		c.ColorTheme = d.ColorTheme
	}
	if c.WatchDebounceMS <= 0 {
		c.WatchDebounceMS = d.WatchDebounceMS
	}
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored; existing variables are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
// A variable that is set but empty still overrides, so an empty
// SKILLSHEET_CDN_BASE_URL disables the CDN.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvCDNBaseURL); ok {
		c.CDN.BaseURL = v
	}
	if v, ok := lookup(EnvBasePath); ok && v != "" {
		c.BasePath = v
	}
	if v, ok := lookup(EnvIndexHTML); ok {
		c.IndexHTML = v
	}
}

// Routing builds the resolver routing table from the CDN section
func (c *Config) Routing() assets.Routing {
	return assets.Routing{
		BaseURL:     c.CDN.BaseURL,
		Include:     c.CDN.IncludePaths,
		Exclude:     c.CDN.ExcludePaths,
		ExcludeMode: assets.ExcludeMode(c.CDN.ExcludeMatch),
	}
}

// Sheet returns the sprite sheet described by the sprite section
func (c *Config) Sheet() sprite.Sheet {
	return sprite.Sheet{Image: c.Sprite.Image, Width: c.Sprite.Width, Height: c.Sprite.Height}
}

// ResolveAlias maps a configured alias to its character name. Unknown names
// are returned unchanged.
func (c *Config) ResolveAlias(name string) string {
	if target, ok := c.Aliases[strings.ToLower(name)]; ok {
		return target
	}
	return name
}

// Validate returns warnings for settings that load but likely misbehave
func (c *Config) Validate() []string {
	var warnings []string

	base := c.CDN.BaseURL
	if base != "" && strings.TrimSpace(base) == "" {
		warnings = append(warnings, "cdn.base_url is blank; the CDN is disabled")
	} else if base != "" && !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") && !strings.HasPrefix(base, "//") {
		warnings = append(warnings, fmt.Sprintf("cdn.base_url %q has no scheme", base))
	}

	switch assets.ExcludeMode(c.CDN.ExcludeMatch) {
	case assets.ExcludeSubstring, assets.ExcludeGlob:
	default:
		warnings = append(warnings, fmt.Sprintf("cdn.exclude_match %q is unknown; using substring", c.CDN.ExcludeMatch))
	}

	for _, p := range c.CDN.ExcludePaths {
		if p == "" && assets.ExcludeMode(c.CDN.ExcludeMatch) != assets.ExcludeGlob {
			warnings = append(warnings, "cdn.exclude_paths has an empty entry, which excludes every path")
		}
		if strings.ContainsAny(p, "*?") && assets.ExcludeMode(c.CDN.ExcludeMatch) != assets.ExcludeGlob {
			warnings = append(warnings, fmt.Sprintf("cdn.exclude_paths entry %q is matched as a substring; set exclude_match: glob for wildcards", p))
		}
	}

	if !strings.HasPrefix(c.BasePath, "/") && !strings.Contains(c.BasePath, "://") {
		warnings = append(warnings, fmt.Sprintf("base_path %q should start with /", c.BasePath))
	}
	if c.IndexHTML != "" {
		if _, err := os.Stat(c.IndexHTML); err != nil {
			warnings = append(warnings, fmt.Sprintf("index_html %s is not readable", c.IndexHTML))
		}
	}
	if c.Data.Manifest != "" && c.Data.Dir != "" {
		warnings = append(warnings, "data.manifest and data.dir are both set; data.manifest wins")
	}

	return warnings
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
