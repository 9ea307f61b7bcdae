// Package iconset writes the extension's toolbar icons.
package iconset

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"

	"github.com/hrko/lt-icons/pkg/graphics"
)

// Sizes are the icon sizes generated, in order.
var Sizes = []int{16, 48, 128}

func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generate renders every size in Sizes into dir, overwriting existing files,
// and prints one confirmation line per file to out. It stops at the first
// error.
func Generate(dir string, out io.Writer, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	for _, size := range Sizes {
		name := FileName(size)

		img, layout, err := graphics.NewLabelIcon(size).RenderWithLayout()
		if err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		logger.Debug("rendered icon", "size", size, "font_size", layout.FontSize, "fallback_font", layout.Fallback, "text_rect", layout.Rect())

		if err := imaging.Save(img, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("saving %s: %w", name, err)
		}
		fmt.Fprintf(out, "Generated %s\n", name)
	}
	return nil
}
