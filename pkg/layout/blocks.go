package layout

import (
	"image"
	"image/color"

	"github.com/pressplate/pressplate/pkg/canvas"
)

// Spacer advances the cursor without drawing.
type Spacer struct {
	Px int
}

// Draw implements Block.
func (s Spacer) Draw(_ *canvas.Canvas, _ Env, _ int) int {
	if s.Px <= 0 {
		return 1
	}
	return s.Px
}

// Rule draws a thin horizontal divider inset by Margin on both sides.
type Rule struct {
	Margin  int // default 80
	Advance int // default 24
}

// Draw implements Block.
func (r Rule) Draw(c *canvas.Canvas, env Env, y int) int {
	margin := r.Margin
	if margin == 0 {
		margin = 80
	}
	c.Rule(y, margin, env.Palette.Muted)
	if r.Advance == 0 {
		return 24
	}
	return r.Advance
}

// SectionTitle draws a centered section heading, optionally preceded by a
// horizontal rule.
type SectionTitle struct {
	Text     string
	LeadRule bool
}

// Draw implements Block.
func (s SectionTitle) Draw(c *canvas.Canvas, env Env, y int) int {
	adv := 0
	if s.LeadRule {
		c.Rule(y, 80, env.Palette.Muted)
		y += 34
		adv += 34
	}
	face := env.Fonts.Face(sizeSection, true)
	c.TextCentered(s.Text, float64(env.Width)/2, float64(y), face, env.Palette.Text)
	return adv + 44
}

// Title draws the main page title with an optional muted subtitle beneath.
type Title struct {
	Text     string
	Subtitle string
}

// Draw implements Block.
func (t Title) Draw(c *canvas.Canvas, env Env, y int) int {
	cx := float64(env.Width) / 2
	c.TextCentered(t.Text, cx, float64(y), env.Fonts.Face(sizeTitle, true), env.Palette.Text)
	if t.Subtitle == "" {
		return 48
	}
	c.TextCentered(t.Subtitle, cx, float64(y+48), env.Fonts.Face(sizeNormal, false), env.Palette.Muted)
	return 48 + 42
}

// TextRow draws a single centered line of text.
type TextRow struct {
	Text    string
	Size    float64 // default 15
	Bold    bool
	Color   color.NRGBA // zero value uses the muted palette color
	Advance int         // default 28
}

// Draw implements Block.
func (t TextRow) Draw(c *canvas.Canvas, env Env, y int) int {
	size := t.Size
	if size == 0 {
		size = sizeTiny
	}
	col := orDefault(t.Color, env.Palette.Muted)
	c.TextCentered(t.Text, float64(env.Width)/2, float64(y), env.Fonts.Face(size, t.Bold), col)
	if t.Advance == 0 {
		return 28
	}
	return t.Advance
}

// Stat is one value/label pair in a StatBar.
type Stat struct {
	Value string
	Label string
}

// StatBar draws a full-width rounded card with evenly spaced stats, values
// in the primary color above muted labels.
type StatBar struct {
	Stats []Stat
}

// Draw implements Block.
func (s StatBar) Draw(c *canvas.Canvas, env Env, y int) int {
	const (
		margin = 40
		height = 78
		radius = 12
	)
	c.FillRoundedRect(image.Rect(margin, y, env.Width-margin, y+height), radius, env.Palette.Card)

	if n := len(s.Stats); n > 0 {
		sw := (env.Width - 2*margin) / n
		valueFace := env.Fonts.Face(sizeMediumBold, true)
		labelFace := env.Fonts.Face(sizeTiny, false)
		for i, st := range s.Stats {
			cx := float64(margin + sw*i + sw/2)
			c.TextCentered(st.Value, cx, float64(y+25), valueFace, env.Palette.Primary)
			c.TextCentered(st.Label, cx, float64(y+54), labelFace, env.Palette.Muted)
		}
	}
	return height + 32
}

// FeatureItem is one name/description pair in a FeatureRow.
type FeatureItem struct {
	Name string
	Desc string
}

// FeatureRow draws evenly spaced name/description pairs with no card
// background.
type FeatureRow struct {
	Items []FeatureItem
}

// Draw implements Block.
func (f FeatureRow) Draw(c *canvas.Canvas, env Env, y int) int {
	const margin = 50
	if n := len(f.Items); n > 0 {
		w := (env.Width - 2*margin) / n
		nameFace := env.Fonts.Face(sizeSmall, false)
		descFace := env.Fonts.Face(sizeTiny, false)
		for i, it := range f.Items {
			cx := float64(margin + w*i + w/2)
			c.TextCentered(it.Name, cx, float64(y), nameFace, env.Palette.Primary)
			c.TextCentered(it.Desc, cx, float64(y+25), descFace, env.Palette.Muted)
		}
	}
	return 70
}

// TimelinePhase is one milestone on a Timeline.
type TimelinePhase struct {
	Timing string
	Title  string
	Desc   string
}

// Timeline draws a horizontal bar with evenly spaced phase markers and three
// lines of text beneath each marker.
type Timeline struct {
	Phases []TimelinePhase
}

// Draw implements Block.
func (t Timeline) Draw(c *canvas.Canvas, env Env, y int) int {
	const margin = 100
	barY := y + 20
	c.FillRect(image.Rect(margin, barY, env.Width-margin, barY+4), env.Palette.Muted)

	if n := len(t.Phases); n > 0 {
		pw := (env.Width - 2*margin) / n
		timingFace := env.Fonts.Face(sizeSmall, false)
		titleFace := env.Fonts.Face(sizeMedium, false)
		descFace := env.Fonts.Face(sizeTiny, false)
		for i, p := range t.Phases {
			x := margin + pw*i + pw/2
			c.FillCircle(x, barY+2, 8, env.Palette.Primary)
			c.TextCentered(p.Timing, float64(x), float64(barY+30), timingFace, env.Palette.Primary)
			c.TextCentered(p.Title, float64(x), float64(barY+55), titleFace, env.Palette.Text)
			c.TextCentered(p.Desc, float64(x), float64(barY+80), descFace, env.Palette.Muted)
		}
	}
	return 140
}

// CTABanner draws a rounded call-to-action pill, solid or vertically
// gradient-filled, with centered text in the background color.
type CTABanner struct {
	Text   string
	Top    color.NRGBA // zero value uses the primary palette color
	Bottom color.NRGBA // zero value makes the fill solid
	Inset  int         // default 200
	Height int         // default 55
	Radius int         // default 28
}

// Draw implements Block.
func (b CTABanner) Draw(c *canvas.Canvas, env Env, y int) int {
	inset := b.Inset
	if inset == 0 {
		inset = 200
	}
	height := b.Height
	if height == 0 {
		height = 55
	}
	radius := b.Radius
	if radius == 0 {
		radius = 28
	}

	top := orDefault(b.Top, env.Palette.Primary)
	rect := image.Rect(inset, y, env.Width-inset, y+height)
	if b.Bottom == (color.NRGBA{}) {
		c.FillRoundedRect(rect, radius, top)
	} else {
		c.GradientRoundedRect(rect, top, b.Bottom, radius)
	}

	face := env.Fonts.Face(sizeMediumBold, true)
	c.TextCentered(b.Text, float64(env.Width)/2, float64(y+height/2), face, env.Palette.Background)
	return height + 20
}
