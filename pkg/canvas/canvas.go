// Package canvas provides the mutable raster surface infographic blocks draw
// onto. It pairs an RGBA pixel buffer with a fogleman/gg drawing context
// sharing the same backing array: shape primitives go through pkg/raster for
// exact, deterministic pixels, while text goes through gg for anchored
// drawing and measurement with TrueType faces.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/pressplate/pressplate/pkg/raster"
)

// Canvas is a fixed-width RGB drawing surface. It is created once per
// rendering run, mutated in place by the layout engine, and discarded after
// export. Not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// New allocates a canvas of the given dimensions filled with the background
// color. The height is the nominal allocation; the exported image is cropped
// to content height later.
func New(width, height int, background color.NRGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	raster.FillRect(img, img.Bounds(), background)
	return &Canvas{img: img, dc: gg.NewContextForRGBA(img)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the allocated canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image exposes the backing buffer for export.
func (c *Canvas) Image() *image.RGBA { return c.img }

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(r image.Rectangle, col color.NRGBA) {
	raster.FillRect(c.img, r, col)
}

// FillRoundedRect paints a filled rounded rectangle.
func (c *Canvas) FillRoundedRect(r image.Rectangle, radius int, col color.NRGBA) {
	raster.FillRoundedRect(c.img, r, radius, col)
}

// GradientRoundedRect paints a vertical gradient, masked to a rounded
// rectangle when radius > 0, composited over the existing pixels.
func (c *Canvas) GradientRoundedRect(r image.Rectangle, top, bottom color.NRGBA, radius int) {
	raster.GradientRoundedRect(c.img, r, top, bottom, radius)
}

// FillCircle paints a filled circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, radius int, col color.NRGBA) {
	raster.FillCircle(c.img, cx, cy, radius, col)
}

// Rule paints a thin horizontal divider at y, inset by margin on both sides.
func (c *Canvas) Rule(y, margin int, col color.NRGBA) {
	raster.FillRect(c.img, image.Rect(margin, y, c.Width()-margin, y+2), col)
}

// TextCentered draws s centered horizontally and vertically on (x, y).
func (c *Canvas) TextCentered(s string, x, y float64, face font.Face, col color.NRGBA) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

// TextLeft draws s with its top-left corner anchored on (x, y).
func (c *Canvas) TextLeft(s string, x, y float64, face font.Face, col color.NRGBA) {
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, 0, 1)
}

// MeasureString returns the rendered width of s in the given face.
func (c *Canvas) MeasureString(s string, face font.Face) float64 {
	c.dc.SetFontFace(face)
	w, _ := c.dc.MeasureString(s)
	return w
}

// Paste alpha-composites src onto the canvas with its top-left at (x, y).
func (c *Canvas) Paste(src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.img, r, src, b.Min, draw.Over)
}
