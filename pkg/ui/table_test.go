package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamal-hamza/skillsheet/pkg/settings"
)

func TestPadString_WideRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		align string
		want  int
	}{
		{"ascii left", "kyo", 8, "left", 8},
		{"cjk left", "草薙京", 8, "left", 8},
		{"cjk right", "八神庵", 10, "right", 10},
		{"cjk center", "大门五郎", 12, "center", 12},
		{"already wide", "二阶堂红丸", 4, "left", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padString(tt.input, tt.width, tt.align)
			if w := lipgloss.Width(got); w != tt.want {
				t.Errorf("padString(%q, %d) width = %d, want %d", tt.input, tt.width, w, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefgh", 5, "abcd…"},
		{"草薙京", 4, "草…"},
		{"草薙京", 6, "草薙京"},
		{"anything", 1, "…"},
		{"anything", 0, "anything"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestTable_Render(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "NAME"},
		{Header: "MOVES", Align: "right"},
	})
	table.AddRow([]string{"草薙京", "5"})
	table.AddRow([]string{"特瑞·博加德", "4"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}

	width := lipgloss.Width(lines[0])
	for i, line := range lines[1:] {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d width = %d, want %d", i+1, w, width)
		}
	}
}

func TestTable_Empty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestApplySettings(t *testing.T) {
	defer ApplySettings(settings.Defaults())

	ApplySettings(settings.Settings{ColorScheme: settings.ColorSchemeDark, PrimaryColor: settings.PrimaryTomatoOrange})
	if Theme() != "dark" {
		t.Errorf("Theme = %q, want dark", Theme())
	}
	if ColorPrimary != primaryColors[settings.PrimaryTomatoOrange] {
		t.Errorf("ColorPrimary = %v", ColorPrimary)
	}

	ApplySettings(settings.Settings{ColorScheme: settings.ColorSchemeSystem})
	if Theme() != "auto" {
		t.Errorf("system scheme should map to auto, got %q", Theme())
	}

	SetPrimary("hotPink")
	if ColorPrimary != primaryColors[settings.PrimaryTomatoOrange] {
		t.Error("unknown primary color should be ignored")
	}
}
