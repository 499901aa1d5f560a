package sprite

import (
	"strings"
	"testing"
)

func TestSheet_FitToSize(t *testing.T) {
	sheet := DefaultSheet()
	pos := Position{X: 204, Y: 102, Width: 102, Height: 102}

	box := sheet.FitToSize(pos, 64)

	if box.Width != 64 || box.Height != 64 {
		t.Errorf("box = %gx%g, want 64x64", box.Width, box.Height)
	}
	if want := 64.0 / 102.0; box.Scale != want {
		t.Errorf("scale = %g, want %g", box.Scale, want)
	}
	if box.OffsetX != -204 || box.OffsetY != -102 {
		t.Errorf("offset = (%g, %g), want (-204, -102)", box.OffsetX, box.OffsetY)
	}
	if box.SheetWidth != DefaultWidth || box.SheetHeight != DefaultHeight {
		t.Errorf("sheet = %gx%g", box.SheetWidth, box.SheetHeight)
	}
}

func TestSheet_FitToSize_ZeroWidth(t *testing.T) {
	box := DefaultSheet().FitToSize(Position{}, 64)
	if box.Scale != 1 {
		t.Errorf("scale = %g, want 1 for an empty rectangle", box.Scale)
	}
}

func TestSheet_Natural(t *testing.T) {
	tests := []struct {
		name  string
		pos   Position
		scale float64
		w, h  float64
	}{
		{"character page scale", Position{Width: 102, Height: 102}, 0.3, 31, 31},
		{"unscaled", Position{Width: 102, Height: 98}, 1, 102, 98},
		{"zero scale means one", Position{Width: 50, Height: 40}, 0, 50, 40},
		{"tiny never below one pixel", Position{Width: 1, Height: 1}, 0.1, 1, 1},
		{"rounds half up", Position{Width: 5, Height: 15}, 0.5, 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := DefaultSheet().Natural(tt.pos, tt.scale)
			if box.Width != tt.w || box.Height != tt.h {
				t.Errorf("Natural() = %gx%g, want %gx%g", box.Width, box.Height, tt.w, tt.h)
			}
		})
	}
}

func TestSheet_Validate(t *testing.T) {
	sheet := Sheet{Width: 300, Height: 200}

	tests := []struct {
		name    string
		pos     Position
		wantErr string
	}{
		{"inside", Position{X: 0, Y: 0, Width: 100, Height: 100}, ""},
		{"flush with corner", Position{X: 200, Y: 100, Width: 100, Height: 100}, ""},
		{"past right edge", Position{X: 250, Y: 0, Width: 100, Height: 100}, "right edge"},
		{"past bottom edge", Position{X: 0, Y: 150, Width: 100, Height: 100}, "bottom edge"},
		{"wider than sheet", Position{Width: 400, Height: 10}, "exceeds sheet"},
		{"negative origin", Position{X: -1, Width: 10, Height: 10}, "negative"},
		{"empty", Position{}, "not positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sheet.Validate(tt.pos)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSheet_Percent(t *testing.T) {
	sheet := Sheet{Image: "/s.png", Width: 300, Height: 200}
	p := sheet.Percent(Position{X: 100, Y: 50, Width: 100, Height: 100}, 64)

	if p.PositionX != 50 || p.PositionY != 50 {
		t.Errorf("position = (%g, %g), want (50, 50)", p.PositionX, p.PositionY)
	}
	if p.SizeX != 300 || p.SizeY != 200 {
		t.Errorf("size = (%g, %g), want (300, 200)", p.SizeX, p.SizeY)
	}

	full := sheet.Percent(Position{Width: 300, Height: 200}, 64)
	if full.PositionX != 0 || full.PositionY != 0 {
		t.Errorf("full sheet position = (%g, %g), want (0, 0)", full.PositionX, full.PositionY)
	}
}

func TestBox_Styles(t *testing.T) {
	box := Sheet{Image: "/s.png", Width: 300, Height: 200}.Natural(Position{X: 10, Y: 0, Width: 20, Height: 20}, 1)

	outer := box.OuterStyle()
	if outer != "width:20px;height:20px;overflow:hidden;position:relative" {
		t.Errorf("OuterStyle() = %q", outer)
	}

	inner := box.InnerStyle()
	for _, want := range []string{
		"width:300px",
		"background-image:url(/s.png)",
		"background-position:-10px 0px",
		"transform:scale(1)",
	} {
		if !strings.Contains(inner, want) {
			t.Errorf("InnerStyle() = %q, missing %q", inner, want)
		}
	}
}
