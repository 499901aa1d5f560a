package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/kamal-hamza/skillsheet/pkg/sprite"
)

// DefaultAssetRoot is where per-character image folders live.
const DefaultAssetRoot = "/assets/kof97"

// PlaceholderAvatar is shown for characters without an avatar.
const PlaceholderAvatar = "/assets/kof97/placeholder.png"

// ErrNotFound is returned when a character lookup has no result.
var ErrNotFound = errors.New("character not found")

// Skill is a single move in a character's list
type Skill struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Command     string   `json:"command"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// HasImages reports whether the skill has carousel images
func (s Skill) HasImages() bool {
	return len(s.Images) > 0
}

// Avatar is either a standalone image path or a rectangle on the shared
// sprite sheet.
type Avatar struct {
	Image  string
	Sprite *sprite.Position
}

// UnmarshalJSON accepts `"path.png"`, `{"sprite": {...}}` and null.
func (a *Avatar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Avatar{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var image string
		if err := json.Unmarshal(data, &image); err != nil {
			return err
		}
		*a = Avatar{Image: image}
		return nil
	}

	var obj struct {
		Sprite *sprite.Position `json:"sprite"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("avatar must be a string or an object: %w", err)
	}
	*a = Avatar{Sprite: obj.Sprite}
	return nil
}

// MarshalJSON writes the same shapes UnmarshalJSON reads.
func (a Avatar) MarshalJSON() ([]byte, error) {
	switch {
	case a.Sprite != nil:
		return json.Marshal(struct {
			Sprite *sprite.Position `json:"sprite"`
		}{a.Sprite})
	case a.Image != "":
		return json.Marshal(a.Image)
	default:
		return []byte("null"), nil
	}
}

// HasSprite reports whether the avatar addresses the sprite sheet.
func (a *Avatar) HasSprite() bool {
	return a != nil && a.Sprite != nil
}

// HasImage reports whether the avatar is a standalone image.
func (a *Avatar) HasImage() bool {
	return a != nil && a.Sprite == nil && a.Image != ""
}

// Kind names the avatar variant for display.
func (a *Avatar) Kind() string {
	switch {
	case a.HasSprite():
		return "sprite"
	case a.HasImage():
		return "image"
	default:
		return "placeholder"
	}
}

// Character is one roster entry
type Character struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
	Avatar *Avatar `json:"avatar,omitempty"`
}

// SkillCount returns the number of moves
func (c Character) SkillCount() int {
	return len(c.Skills)
}

// ImageCount returns the number of skill images across all moves
func (c Character) ImageCount() int {
	n := 0
	for _, s := range c.Skills {
		n += len(s.Images)
	}
	return n
}

// AssetDir returns the logical folder holding this character's skill images.
func (c Character) AssetDir(root string) string {
	if root == "" {
		root = DefaultAssetRoot
	}
	return path.Join(root, c.Name)
}

// SkillTypes returns the distinct skill types in first-seen order.
func (c Character) SkillTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, s := range c.Skills {
		t := strings.TrimSpace(s.Type)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types
}
