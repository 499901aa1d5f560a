package settings

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type ColorScheme string

const (
	ColorSchemeLight  ColorScheme = "light"
	ColorSchemeDark   ColorScheme = "dark"
	ColorSchemeSystem ColorScheme = "system"
)

type PrimaryColor string

const (
	PrimaryChateauGreen PrimaryColor = "chateauGreen"
	PrimaryNeonBlue     PrimaryColor = "neonBlue"
	PrimaryRoyalBlue    PrimaryColor = "royalBlue"
	PrimaryTomatoOrange PrimaryColor = "tomatoOrange"
)

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

type NavColor string

const (
	NavColorBlendIn  NavColor = "blend_in"
	NavColorDiscrete NavColor = "discrete"
	NavColorEvident  NavColor = "evident"
)

var (
	colorSchemes  = []ColorScheme{ColorSchemeLight, ColorSchemeDark, ColorSchemeSystem}
	primaryColors = []PrimaryColor{PrimaryChateauGreen, PrimaryNeonBlue, PrimaryRoyalBlue, PrimaryTomatoOrange}
	directions    = []Direction{DirectionLTR, DirectionRTL}
	layouts       = []Layout{LayoutHorizontal, LayoutVertical}
	navColors     = []NavColor{NavColorBlendIn, NavColorDiscrete, NavColorEvident}
)

// ErrUnknownKey is returned by Get and SetField for keys Keys does not list.
var ErrUnknownKey = errors.New("unknown settings key")

// Settings are the user's display preferences
type Settings struct {
	ColorScheme  ColorScheme  `yaml:"color_scheme,omitempty"`
	PrimaryColor PrimaryColor `yaml:"primary_color,omitempty"`
	Direction    Direction    `yaml:"direction,omitempty"`
	Layout       Layout       `yaml:"layout,omitempty"`
	NavColor     NavColor     `yaml:"nav_color,omitempty"`
}

// Defaults returns the settings used when nothing is persisted
func Defaults() Settings {
	return Settings{
		ColorScheme:  ColorSchemeLight,
		PrimaryColor: PrimaryNeonBlue,
		Direction:    DirectionLTR,
		Layout:       LayoutVertical,
		NavColor:     NavColorEvident,
	}
}

// ApplyDefaults fills every empty field of s from Defaults.
func ApplyDefaults(s Settings) Settings {
	d := Defaults()
	if s.ColorScheme == "" {
		s.ColorScheme = d.ColorScheme
	}
	if s.PrimaryColor == "" {
		s.PrimaryColor = d.PrimaryColor
	}
	if s.Direction == "" {
		s.Direction = d.Direction
	}
	if s.Layout == "" {
		s.Layout = d.Layout
	}
	if s.NavColor == "" {
		s.NavColor = d.NavColor
	}
	return s
}

// Validate rejects values outside each field's enum. Empty fields are valid.
func (s Settings) Validate() error {
	var errs []error
	check := func(key string, ok bool, value string, allowed []string) {
		if value != "" && !ok {
			errs = append(errs, fmt.Errorf("invalid %s %q (allowed: %s)", key, value, strings.Join(allowed, ", ")))
		}
	}

	check("color_scheme", slices.Contains(colorSchemes, s.ColorScheme), string(s.ColorScheme), names(colorSchemes))
	check("primary_color", slices.Contains(primaryColors, s.PrimaryColor), string(s.PrimaryColor), names(primaryColors))
	check("direction", slices.Contains(directions, s.Direction), string(s.Direction), names(directions))
	check("layout", slices.Contains(layouts, s.Layout), string(s.Layout), names(layouts))
	check("nav_color", slices.Contains(navColors, s.NavColor), string(s.NavColor), names(navColors))

	return errors.Join(errs...)
}

// Keys lists the settable keys in display order
func Keys() []string {
	return []string{"color_scheme", "primary_color", "direction", "layout", "nav_color"}
}

// Allowed returns the accepted values for key
func Allowed(key string) ([]string, error) {
	switch key {
	case "color_scheme":
		return names(colorSchemes), nil
	case "primary_color":
		return names(primaryColors), nil
	case "direction":
		return names(directions), nil
	case "layout":
		return names(layouts), nil
	case "nav_color":
		return names(navColors), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Get returns the value of key
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "color_scheme":
		return string(s.ColorScheme), nil
	case "primary_color":
		return string(s.PrimaryColor), nil
	case "direction":
		return string(s.Direction), nil
	case "layout":
		return string(s.Layout), nil
	case "nav_color":
		return string(s.NavColor), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// SetField assigns value to key and validates the result
func (s *Settings) SetField(key, value string) error {
	next := *s
	switch key {
	case "color_scheme":
		next.ColorScheme = ColorScheme(value)
	case "primary_color":
		next.PrimaryColor = PrimaryColor(value)
	case "direction":
		next.Direction = Direction(value)
	case "layout":
		next.Layout = Layout(value)
	case "nav_color":
		next.NavColor = NavColor(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
