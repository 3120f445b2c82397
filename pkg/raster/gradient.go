package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// VerticalGradient builds a w x h buffer where each row holds a single solid
// color interpolated between top (row 0) and bottom (last row). Channels are
// interpolated independently with integer truncation, so the first row equals
// top exactly and the last row equals bottom exactly.
func VerticalGradient(w, h int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	div := h - 1
	if div < 1 {
		div = 1
	}
	for row := 0; row < h; row++ {
		c := lerpNRGBA(top, bottom, row, div)
		FillRect(img, image.Rect(0, row, w, row+1), c)
	}
	return img
}

// GradientRoundedRect paints a vertical gradient covering r onto dst.
// When radius > 0, a rounded-rectangle alpha mask (per FillRoundedRect) is
// applied so that only the rounded region is composited; destination pixels
// outside the shape are left untouched.
func GradientRoundedRect(dst draw.Image, r image.Rectangle, top, bottom color.NRGBA, radius int) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	overlay := VerticalGradient(r.Dx(), r.Dy(), top, bottom)

	if radius <= 0 {
		draw.Draw(dst, r, overlay, image.Point{}, draw.Over)
		return
	}

	mask := image.NewAlpha(overlay.Bounds())
	FillRoundedRect(mask, mask.Bounds(), radius, color.Alpha{A: 0xff})
	draw.DrawMask(dst, r, overlay, image.Point{}, mask, image.Point{}, draw.Over)
}

// lerpNRGBA interpolates each channel at position num/div, truncating the
// interpolated value.
func lerpNRGBA(a, b color.NRGBA, num, div int) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, num, div),
		G: lerpChannel(a.G, b.G, num, div),
		B: lerpChannel(a.B, b.B, num, div),
		A: 0xff,
	}
}

// lerpChannel computes floor(a + (b-a)*num/div) in exact integer arithmetic.
// The truncation applies to the interpolated value, not the delta term:
// a + trunc((b-a)*num/div) would come out 1 high on interior rows of a
// decreasing channel, because toward-zero division rounds the negative delta
// up. All terms of the rearranged sum are non-negative, so Go's integer
// division is the required floor.
func lerpChannel(a, b uint8, num, div int) uint8 {
	return uint8((int(a)*(div-num) + int(b)*num) / div)
}
