// Package layout implements the block-based layout engine for infographics.
//
// A rendering run walks a flat list of Block descriptors top to bottom,
// maintaining a single vertical cursor: each block draws itself with the
// cursor as its top edge and returns the height it consumed, and the cursor
// only ever advances. The final cursor value determines the exported image
// height.
//
// Blocks are plain data. Everything they need at draw time (fonts, palette,
// canvas width) travels in the Env so descriptors stay declarative and
// directly testable.
package layout

import (
	"image/color"

	"github.com/pressplate/pressplate/pkg/canvas"
	"github.com/pressplate/pressplate/pkg/fonts"
)

// Palette holds the resolved colors for one rendering run.
type Palette struct {
	Background    color.NRGBA
	Primary       color.NRGBA
	Secondary     color.NRGBA
	Text          color.NRGBA
	Muted         color.NRGBA
	Card          color.NRGBA
	CardHighlight color.NRGBA
	AccentPurple  color.NRGBA
	AccentOrange  color.NRGBA
}

// Report collects degradations encountered while drawing, such as a missing
// logo asset forcing the text-only header.
type Report struct {
	LogoFallback bool
}

// Env carries the shared drawing state handed to every block.
type Env struct {
	Fonts   *fonts.Family
	Palette Palette
	Width   int
	Report  *Report
}

// Block is a single vertical unit of the infographic. Draw paints the block
// with y as its top edge and returns the total vertical advance, which must
// be positive.
type Block interface {
	Draw(c *canvas.Canvas, env Env, y int) int
}

// Compose draws blocks in order starting at startY, advancing the cursor by
// each block's returned height. It returns the final cursor value.
func Compose(c *canvas.Canvas, env Env, blocks []Block, startY int) int {
	if env.Report == nil {
		env.Report = &Report{}
	}
	y := startY
	for _, b := range blocks {
		y += b.Draw(c, env, y)
	}
	return y
}

// Font sizes in points, matching the original design constants.
const (
	sizeBrand      = 56
	sizeTitle      = 52
	sizeSection    = 36
	sizeLarge      = 30
	sizeMediumBold = 24
	sizeMedium     = 24
	sizeNormal     = 20
	sizeSmallBold  = 18
	sizeSmall      = 18
	sizeTinyBold   = 15
	sizeTiny       = 15
)

// orDefault returns fallback when c is the zero color.
func orDefault(c, fallback color.NRGBA) color.NRGBA {
	if c == (color.NRGBA{}) {
		return fallback
	}
	return c
}
