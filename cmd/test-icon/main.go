package main

import (
	"os"

	"github.com/disintegration/imaging"

	"github.com/hrko/lt-icons/pkg/graphics"
)

func main() {
	svgFile, err := os.Create("test.svg")
	if err != nil {
		panic(err)
	}
	defer svgFile.Close()

	icon := graphics.NewLabelIcon(128)

	if err := icon.RenderSVG(svgFile); err != nil {
		panic(err)
	}

	img, err := icon.RenderVectorImage()
	if err != nil {
		panic(err)
	}
	if err := imaging.Save(img, "test.png"); err != nil {
		panic(err)
	}
}
