// Package raster implements the low-level shape rasterization used by the
// infographic canvas: filled rounded rectangles, filled circles, and
// vertical-gradient fills with optional rounded alpha masks.
//
// The rounded rectangle is intentionally rasterized as the union of two
// overlapping rectangles (a horizontal strip inset by the radius and a
// vertical strip inset by the radius) plus four full circles, one per corner.
// This is not a true arc-clipped rounded rectangle; the circle caps extend to
// the full 2*radius diameter. The decomposition is part of the visual
// contract and must not be replaced with an antialiased path fill.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// FillRoundedRect paints a filled rounded rectangle covering r onto dst.
// The radius is clamped to half the smaller box dimension so the corner caps
// never exceed the box.
func FillRoundedRect(dst draw.Image, r image.Rectangle, radius int, c color.Color) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	rad := clampRadius(radius, r)

	// Horizontal strip, inset by the radius on left and right.
	FillRect(dst, image.Rect(r.Min.X+rad, r.Min.Y, r.Max.X-rad, r.Max.Y), c)
	// Vertical strip, inset by the radius on top and bottom.
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y+rad, r.Max.X, r.Max.Y-rad), c)

	if rad == 0 {
		return
	}

	// Four full circles centered on the strip corners.
	left, right := r.Min.X+rad, r.Max.X-1-rad
	top, bottom := r.Min.Y+rad, r.Max.Y-1-rad
	FillCircle(dst, left, top, rad, c)
	FillCircle(dst, right, top, rad, c)
	FillCircle(dst, left, bottom, rad, c)
	FillCircle(dst, right, bottom, rad, c)
}

// FillRect paints a solid axis-aligned rectangle onto dst.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Canon(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillCircle paints a filled circle of the given radius centered at (cx, cy).
// Rows are filled by horizontal scanline, so the painted pixel set is exactly
// symmetric about both axes through the center.
func FillCircle(dst draw.Image, cx, cy, radius int, c color.Color) {
	if radius < 0 {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		dx := int(math.Sqrt(float64(radius*radius - dy*dy)))
		FillRect(dst, image.Rect(cx-dx, cy+dy, cx+dx+1, cy+dy+1), c)
	}
}

// clampRadius limits radius to at most half the shorter box dimension.
func clampRadius(radius int, r image.Rectangle) int {
	if radius < 0 {
		return 0
	}
	if m := r.Dx() / 2; radius > m {
		radius = m
	}
	if m := r.Dy() / 2; radius > m {
		radius = m
	}
	return radius
}
