package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kamal-hamza/skillsheet/pkg/settings"
)

// Primary palette, keyed by the primary_color setting
var primaryColors = map[settings.PrimaryColor]lipgloss.AdaptiveColor{
	settings.PrimaryChateauGreen: {Light: "#16b364", Dark: "#3ccb7f"},
	settings.PrimaryNeonBlue:     {Light: "#635bff", Dark: "#8b85ff"},
	settings.PrimaryRoyalBlue:    {Light: "#5265ff", Dark: "#7a8aff"},
	settings.PrimaryTomatoOrange: {Light: "#ff6c47", Dark: "#ff8f73"},
}

var (
	// Color palette using terminal colors for consistency
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"} // Red
	ColorPrimary = primaryColors[settings.PrimaryNeonBlue]
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"} // Cyan
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"} // Gray
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"} // Yellow
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"} // Blue
	ColorDefault = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}

	// Base styles
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style

	// Component styles
	StyleTitle       lipgloss.Style
	StyleHeader      lipgloss.Style
	StyleSubtle      lipgloss.Style
	StyleBold        lipgloss.Style
	StyleChip        lipgloss.Style
	StyleChipActive  lipgloss.Style
	StyleCommand     lipgloss.Style
	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style

	// Status icons
	IconSuccess = "✔"
	IconError   = "✘"
	IconRocket  = "🚀"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconFighter = "🥋"
	IconMove    = "⚡"
	IconImage   = "🖼"

	theme = "auto"
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the specified color theme ("auto", "dark", "light")
func SetTheme(name string) {
	switch name {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		// Auto: lipgloss detects automatically
	}
	theme = name

	rebuild()
}

// SetPrimary switches the primary color. Unknown names are ignored.
func SetPrimary(name settings.PrimaryColor) {
	c, ok := primaryColors[name]
	if !ok {
		return
	}
	ColorPrimary = c

	rebuild()
}

// ApplySettings maps display settings onto the terminal styles. The
// "system" color scheme lets lipgloss detect the background.
func ApplySettings(s settings.Settings) {
	if c, ok := primaryColors[s.PrimaryColor]; ok {
		ColorPrimary = c
	}

	switch s.ColorScheme {
	case settings.ColorSchemeLight:
		SetTheme("light")
	case settings.ColorSchemeDark:
		SetTheme("dark")
	default:
		SetTheme("auto")
	}
}

// Theme returns the active theme name
func Theme() string {
	return theme
}

func rebuild() {
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleInfo = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)

	StyleTitle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSubtle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleChip = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	StyleChipActive = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(ColorPrimary).Padding(0, 1)
	StyleCommand = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	StyleTableHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Align(lipgloss.Left)
	StyleTableRow = lipgloss.NewStyle().Foreground(ColorDefault)
	StyleTableRowAlt = lipgloss.NewStyle().Foreground(ColorDefault).Faint(true)
	StyleTableBorder = lipgloss.NewStyle().Foreground(ColorMuted)
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return StyleInfo.Render(IconInfo + " " + msg)
}

// FormatWarning returns a warning message with icon
func FormatWarning(msg string) string {
	return StyleWarning.Render(IconWarning + " " + msg)
}

// FormatRocket returns a rocket message (for exciting actions)
func FormatRocket(msg string) string {
	return StylePrimary.Render(IconRocket + " " + msg)
}

// FormatTitle returns a formatted title
func FormatTitle(title string) string {
	return StyleTitle.Render(title)
}

// FormatMuted returns muted/subtle text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}

// FormatBold returns bold text
func FormatBold(text string) string {
	return StyleBold.Render(text)
}

// FormatCommand renders a move's input sequence
func FormatCommand(cmd string) string {
	return StyleCommand.Render(cmd)
}

// FormatChip renders a filter chip
func FormatChip(label string, active bool) string {
	if active {
		return StyleChipActive.Render(label)
	}
	return StyleChip.Render(label)
}
