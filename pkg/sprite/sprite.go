// Package sprite computes the display geometry for avatars cut out of a single
// shared sprite sheet.
package sprite

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default sheet used by the kof97 roster.
const (
	DefaultImage  = "/assets/kof97/avatar-spire.png"
	DefaultWidth  = 3306
	DefaultHeight = 1638

	// DefaultAvatarSize is the width and height of one avatar cell, border included.
	DefaultAvatarSize = 102
)

// Position addresses a sub-rectangle of the sheet in pixels.
type Position struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Sheet is the shared sprite image and its natural dimensions.
type Sheet struct {
	Image  string
	Width  float64
	Height float64
}

// DefaultSheet returns the kof97 avatar sheet.
func DefaultSheet() Sheet {
	return Sheet{
		Image:  DefaultImage,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Validate checks that pos lies entirely within the sheet.
func (s Sheet) Validate(pos Position) error {
	var errs []error

	if pos.X < 0 || pos.Y < 0 {
		errs = append(errs, fmt.Errorf("origin (%g, %g) is negative", pos.X, pos.Y))
	}
	if pos.Width <= 0 || pos.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %gx%g is not positive", pos.Width, pos.Height))
	}
	if pos.Width > s.Width || pos.Height > s.Height {
		errs = append(errs, fmt.Errorf("size %gx%g exceeds sheet %gx%g", pos.Width, pos.Height, s.Width, s.Height))
	}
	if pos.X+pos.Width > s.Width {
		errs = append(errs, fmt.Errorf("right edge %g exceeds sheet width %g", pos.X+pos.Width, s.Width))
	}
	if pos.Y+pos.Height > s.Height {
		errs = append(errs, fmt.Errorf("bottom edge %g exceeds sheet height %g", pos.Y+pos.Height, s.Height))
	}

	return errors.Join(errs...)
}

// Box is a display box with the whole sheet rendered inside it, shifted and
// scaled so that only the addressed rectangle is visible.
type Box struct {
	Width       float64
	Height      float64
	Scale       float64
	OffsetX     float64
	OffsetY     float64
	SheetWidth  float64
	SheetHeight float64
	Image       string
}

// FitToSize produces a size x size box scaled uniformly by size / pos.Width.
func (s Sheet) FitToSize(pos Position, size float64) Box {
	scale := 1.0
	if pos.Width > 0 {
		scale = size / pos.Width
	}
	return s.box(pos, size, size, scale)
}

// Natural produces a box of the rectangle's own size multiplied by scale,
// rounded to whole pixels and never smaller than 1. A zero scale means 1.
func (s Sheet) Natural(pos Position, scale float64) Box {
	if scale <= 0 {
		scale = 1
	}
	w := math.Max(1, math.Round(pos.Width*scale))
	h := math.Max(1, math.Round(pos.Height*scale))
	return s.box(pos, w, h, scale)
}

func (s Sheet) box(pos Position, w, h, scale float64) Box {
	return Box{
		Width:       w,
		Height:      h,
		Scale:       scale,
		OffsetX:     -pos.X,
		OffsetY:     -pos.Y,
		SheetWidth:  s.Width,
		SheetHeight: s.Height,
		Image:       s.Image,
	}
}

// OuterStyle is the CSS for the clipping box.
func (b Box) OuterStyle() string {
	return fmt.Sprintf("width:%spx;height:%spx;overflow:hidden;position:relative", px(b.Width), px(b.Height))
}

// InnerStyle is the CSS for the element that carries the sheet.
func (b Box) InnerStyle() string {
	parts := []string{
		"width:" + px(b.SheetWidth) + "px",
		"height:" + px(b.SheetHeight) + "px",
		"background-image:url(" + b.Image + ")",
		"background-repeat:no-repeat",
		"background-position:" + px(b.OffsetX) + "px " + px(b.OffsetY) + "px",
		"transform:scale(" + px(b.Scale) + ")",
		"transform-origin:top left",
	}
	return strings.Join(parts, ";")
}

// PercentBox positions the sheet with percentage background offsets instead
// of a transform, for renderers that cannot scale an inner element.
type PercentBox struct {
	Size      float64
	PositionX float64
	PositionY float64
	SizeX     float64
	SizeY     float64
	Image     string
}

// Percent computes the percentage background for a size x size box.
func (s Sheet) Percent(pos Position, size float64) PercentBox {
	return PercentBox{
		Size:      size,
		PositionX: ratio(pos.X, s.Width-pos.Width),
		PositionY: ratio(pos.Y, s.Height-pos.Height),
		SizeX:     ratio(s.Width, pos.Width),
		SizeY:     ratio(s.Height, pos.Height),
		Image:     s.Image,
	}
}

// Style renders the box as a single CSS declaration list.
func (p PercentBox) Style() string {
	return fmt.Sprintf(
		"width:%spx;height:%spx;background-image:url(%s);background-position:%s%% %s%%;background-size:%s%% %s%%;background-repeat:no-repeat",
		px(p.Size), px(p.Size), p.Image,
		px(p.PositionX), px(p.PositionY),
		px(p.SizeX), px(p.SizeY),
	)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

// px formats a number without a trailing ".0".
func px(v float64) string {
	if v == 0 {
		// Avoids "-0" for offsets of rectangles at the origin.
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
