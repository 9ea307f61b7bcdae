package graphics

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-playground/colors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var ErrInvalidSize = errors.New("icon size must be greater than 0")

// LabelIcon renders a short text label centered on a square, single colour
// background.
type LabelIcon struct {
	Size       int
	Text       string
	FontFamily string
	FontScale  float64 // font size relative to Size
	Color      struct {
		Background string // "#RRGGBB"
		Foreground string
	}
}

// TextLayout describes where the label ended up on the canvas.
// X and Y are the top-left corner of the measured bounding box.
type TextLayout struct {
	X, Y          int
	Width, Height int
	FontSize      float64
	Fallback      bool // true if the default face was used
}

func (t TextLayout) Rect() image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+t.Width, t.Y+t.Height)
}

func NewLabelIcon(size int) *LabelIcon {
	l := &LabelIcon{}
	l.Size = size
	l.Text = "LT"
	l.FontFamily = "Arial"
	l.FontScale = 0.6
	l.Color.Background = "#4CAF50"
	l.Color.Foreground = "#FFFFFF"
	return l
}

func (l *LabelIcon) Validate() error {
	if l.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, l.Size)
	}
	if _, err := parseHexColor(l.Color.Background); err != nil {
		return fmt.Errorf("Color.Background: %w", err)
	}
	if _, err := parseHexColor(l.Color.Foreground); err != nil {
		return fmt.Errorf("Color.Foreground: %w", err)
	}
	return nil
}

func (l *LabelIcon) Render() (image.Image, error) {
	img, _, err := l.RenderWithLayout()
	return img, err
}

func (l *LabelIcon) RenderWithLayout() (image.Image, TextLayout, error) {
	var layout TextLayout

	if err := l.Validate(); err != nil {
		return nil, layout, err
	}
	bg, _ := parseHexColor(l.Color.Background)
	fg, _ := parseHexColor(l.Color.Foreground)

	dc := gg.NewContext(l.Size, l.Size)
	dc.SetColor(bg)
	dc.Clear()

	layout.FontSize = l.fontSize()
	face, ok := loadFontFace(l.FontFamily, layout.FontSize)
	layout.Fallback = !ok
	dc.SetFontFace(face)

	bounds := glyphBounds(face, l.Text)
	layout.Width = bounds.Dx()
	layout.Height = bounds.Dy()
	layout.X = floorDiv(l.Size-layout.Width, 2)
	layout.Y = floorDiv(l.Size-layout.Height, 2)

	// DrawString takes the dot (baseline origin), not the box corner
	dc.SetColor(fg)
	dc.DrawString(l.Text, float64(layout.X-bounds.Min.X), float64(layout.Y-bounds.Min.Y))

	return dc.Image(), layout, nil
}

// glyphBounds returns the union of the glyph masks drawn for s with the dot
// at the origin. The dot advances the way gg's DrawString advances it, so the
// box covers every pixel DrawString can touch. Masks are rounded out to whole
// pixels and can be wider than font.BoundString.
func glyphBounds(face font.Face, s string) image.Rectangle {
	var (
		r    image.Rectangle
		dot  fixed.Point26_6
		prev = rune(-1)
	)
	for _, c := range s {
		if prev >= 0 {
			dot.X += face.Kern(prev, c)
		}
		dr, _, _, advance, ok := face.Glyph(dot, c)
		if !ok {
			continue
		}
		r = r.Union(dr)
		dot.X += advance
		prev = c
	}
	return r
}

func (l *LabelIcon) fontSize() float64 {
	return math.Round(float64(l.Size) * l.FontScale)
}

func parseHexColor(s string) (color.Color, error) {
	hex, err := colors.ParseHEX(s)
	if err != nil {
		return nil, err
	}
	rgba := hex.ToRGBA()
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(math.Round(rgba.A * 0xff))}, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
