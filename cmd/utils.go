package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/pkg/sprite"
)

// GetPreferredEditor returns the editor command from config, env, or default
func GetPreferredEditor() string {
	// 1. Check Config
	if appConfig != nil && appConfig.Editor != "" {
		return appConfig.Editor
	}
	// 2. Check Environment
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	// 3. Fallback
	return "vi"
}

// OpenFile opens a file with the OS default application.
func OpenFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	// Start detaches so skillsheet can exit while the viewer stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return nil
}

// characterName joins positional args into one name and expands aliases.
func characterName(args []string) string {
	name := strings.TrimSpace(strings.Join(args, " "))
	if appConfig != nil {
		name = appConfig.ResolveAlias(name)
	}
	return name
}

// skillImageURLs resolves a skill's carousel images under the character's
// asset folder.
func skillImageURLs(c domain.Character, sk domain.Skill) []string {
	dir := c.AssetDir(domain.DefaultAssetRoot)
	urls := make([]string, len(sk.Images))
	for i, img := range sk.Images {
		urls[i] = appResolver.Join(dir, img)
	}
	return urls
}

// avatarURL returns the displayable image for a character: the resolved
// sprite sheet, a standalone image or the placeholder.
func avatarURL(c domain.Character) string {
	switch {
	case c.Avatar.HasSprite():
		return appResolver.Resolve(appSheet.Image)
	case c.Avatar.HasImage():
		return appResolver.Resolve(c.Avatar.Image)
	default:
		return appResolver.Resolve(domain.PlaceholderAvatar)
	}
}

// resolvedSheet is the configured sheet with its image routed through the
// resolver.
func resolvedSheet() sprite.Sheet {
	sheet := appSheet
	sheet.Image = appResolver.Resolve(appSheet.Image)
	return sheet
}

// loadRoster loads the roster, printing nothing; callers report errors.
func loadRoster(ctx context.Context) (*services.RosterResponse, error) {
	resp, err := rosterService.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return resp, nil
}
