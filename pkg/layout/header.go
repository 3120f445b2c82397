package layout

import (
	"github.com/disintegration/imaging"

	"github.com/pressplate/pressplate/pkg/canvas"
)

// LogoHeader draws a wide logo image centered at the top of the page.
// If the image cannot be loaded the header degrades to the brand name drawn
// as centered text, and the degradation is recorded in the Env report.
type LogoHeader struct {
	Path  string
	Brand string
}

// Logo display dimensions and header advances.
const (
	logoWidth       = 400
	logoHeight      = 120
	logoAdvance     = 140
	fallbackAdvance = 120
	globeSize       = 90
	globeTextGap    = 16
)

// Draw implements Block.
func (h LogoHeader) Draw(c *canvas.Canvas, env Env, y int) int {
	img, err := imaging.Open(h.Path)
	if err != nil {
		headerFallback(c, env, h.Brand, y)
		return fallbackAdvance
	}

	logo := imaging.Resize(img, logoWidth, logoHeight, imaging.Lanczos)
	c.Paste(logo, (env.Width-logoWidth)/2, y)
	return logoAdvance
}

// BrandHeader draws a square glyph image next to the brand name, the pair
// centered as a unit. Falls back to the text-only header when the glyph
// cannot be loaded.
type BrandHeader struct {
	GlyphPath string
	Brand     string
}

// Draw implements Block.
func (h BrandHeader) Draw(c *canvas.Canvas, env Env, y int) int {
	img, err := imaging.Open(h.GlyphPath)
	if err != nil {
		headerFallback(c, env, h.Brand, y)
		return fallbackAdvance
	}

	glyph := imaging.Resize(img, globeSize, globeSize, imaging.Lanczos)
	face := env.Fonts.Face(sizeBrand, true)
	brandW := c.MeasureString(h.Brand, face)
	totalW := globeSize + globeTextGap + int(brandW)
	gx := (env.Width - totalW) / 2

	c.Paste(glyph, gx, y)
	c.TextLeft(h.Brand, float64(gx+globeSize+globeTextGap), float64(y+18), face, env.Palette.Text)
	return fallbackAdvance
}

// headerFallback draws the text-only header used when a logo or glyph asset
// is unavailable.
func headerFallback(c *canvas.Canvas, env Env, brand string, y int) {
	if env.Report != nil {
		env.Report.LogoFallback = true
	}
	face := env.Fonts.Face(sizeBrand, true)
	c.TextCentered(brand, float64(env.Width)/2, float64(y+40), face, env.Palette.Primary)
}
