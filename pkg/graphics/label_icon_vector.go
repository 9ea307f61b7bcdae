package graphics

import (
	"image"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/font/gofont/gobold"
)

// RenderVector draws the icon as a vector scene: bold label, centered
// horizontally on Size/2 with the middle of its em box on Size/2.
// One canvas unit (mm) corresponds to one pixel.
func (l *LabelIcon) RenderVector() (*canvas.Canvas, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	bg, _ := parseHexColor(l.Color.Background)
	fg, _ := parseHexColor(l.Color.Foreground)

	family, err := l.loadVectorFontFamily()
	if err != nil {
		return nil, err
	}
	sizeFloat := float64(l.Size)
	face := family.Face(mmToPoints(sizeFloat*l.FontScale), fg, canvas.FontBold, canvas.FontNormal)

	c := canvas.New(sizeFloat, sizeFloat)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(bg)
	ctx.DrawPath(0, 0, canvas.Rectangle(sizeFloat, sizeFloat))

	// y axis points up
	m := face.Metrics()
	baseline := sizeFloat/2 - (m.Ascent-m.Descent)/2
	ctx.DrawText(sizeFloat/2, baseline, canvas.NewTextLine(face, l.Text, canvas.Center))

	return c, nil
}

func (l *LabelIcon) RenderSVG(w io.Writer) error {
	c, err := l.RenderVector()
	if err != nil {
		return err
	}
	return renderers.SVG()(w, c)
}

func (l *LabelIcon) RenderVectorImage() (image.Image, error) {
	c, err := l.RenderVector()
	if err != nil {
		return nil, err
	}
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace), nil
}

func (l *LabelIcon) loadVectorFontFamily() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(l.FontFamily)
	p, err := findBoldFont(l.FontFamily)
	if err == nil {
		if err = family.LoadFontFile(p, canvas.FontBold); err == nil {
			return family, nil
		}
	}
	getLogger().Debug("using bundled bold face", "family", l.FontFamily, "error", err)

	family = canvas.NewFontFamily("Go Bold")
	if err := family.LoadFont(gobold.TTF, 0, canvas.FontBold); err != nil {
		return nil, err
	}
	return family, nil
}

func mmToPoints(mm float64) float64 {
	return mm * 2.834645669291339
}
