package layout

import (
	"image"
	"image/color"
	"strings"

	"github.com/pressplate/pressplate/pkg/canvas"
)

// Card is one tile in a CardGrid. Title lines render centered in the card's
// accent color; Lines render centered in the text color; Bullets render
// left-aligned with a prefix glyph. Footer sits pinned to the card bottom in
// the accent color.
type Card struct {
	Title    string // may contain newlines for stacked title lines
	Subtitle string
	Value    string // large emphasized line (e.g. "80-150% APY")
	Lines    []string
	Bullets  []string
	Footer   string
	Accent   color.NRGBA // zero value uses the primary palette color
}

// CardGrid lays out a row of equally sized rounded cards.
type CardGrid struct {
	Cards        []Card
	Height       int
	Margin       int    // left/right page margin, default 40
	Gap          int    // spacing between cards, default 12
	Radius       int    // corner radius, default 12
	AccentBar    bool   // paint a 5px accent strip along the card top
	Gradient     bool   // fill with a vertical gradient instead of flat card color
	AccentFill   bool   // gradient runs accent -> card instead of highlight -> card
	BulletPrefix string // default "•"
	TailGap      int    // extra advance after the row, default 25
}

// Draw implements Block.
func (g CardGrid) Draw(c *canvas.Canvas, env Env, y int) int {
	n := len(g.Cards)
	if n == 0 {
		return max(1, g.Height+g.tailGap())
	}

	margin := g.Margin
	if margin == 0 {
		margin = 40
	}
	gap := g.Gap
	if gap == 0 {
		gap = 12
	}
	radius := g.Radius
	if radius == 0 {
		radius = 12
	}

	cw := (env.Width - 2*margin - (n-1)*gap) / n
	for i, card := range g.Cards {
		cx := margin + i*(cw+gap)
		g.drawCard(c, env, card, image.Rect(cx, y, cx+cw, y+g.Height), radius)
	}
	return g.Height + g.tailGap()
}

func (g CardGrid) tailGap() int {
	if g.TailGap == 0 {
		return 25
	}
	return g.TailGap
}

func (g CardGrid) drawCard(c *canvas.Canvas, env Env, card Card, rect image.Rectangle, radius int) {
	accent := orDefault(card.Accent, env.Palette.Primary)

	if g.Gradient {
		top := env.Palette.CardHighlight
		if g.AccentFill {
			top = accent
		}
		c.GradientRoundedRect(rect, top, env.Palette.Card, radius)
	} else {
		c.FillRoundedRect(rect, radius, env.Palette.Card)
	}
	if g.AccentBar {
		c.FillRoundedRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+5), 3, accent)
	}

	mid := float64(rect.Min.X) + float64(rect.Dx())/2
	ty := rect.Min.Y + 22

	titleFace := env.Fonts.Face(sizeSmallBold, true)
	for _, line := range strings.Split(card.Title, "\n") {
		c.TextCentered(line, mid, float64(ty), titleFace, accent)
		ty += 22
	}

	if card.Subtitle != "" {
		c.TextCentered(card.Subtitle, mid, float64(ty), env.Fonts.Face(sizeTiny, false), env.Palette.Muted)
		ty += 22
	}

	if card.Value != "" {
		ty += 12
		c.TextCentered(card.Value, mid, float64(ty), env.Fonts.Face(sizeLarge, true), env.Palette.Text)
		ty += 28
	}

	bodyFace := env.Fonts.Face(sizeTiny, false)
	for _, line := range card.Lines {
		ty += 8
		c.TextCentered(line, mid, float64(ty), bodyFace, env.Palette.Text)
		ty += 11
	}

	if len(card.Bullets) > 0 {
		prefix := g.BulletPrefix
		if prefix == "" {
			prefix = "•"
		}
		ty += 6
		for _, b := range card.Bullets {
			c.TextLeft(prefix+" "+b, float64(rect.Min.X+16), float64(ty), bodyFace, env.Palette.Text)
			ty += 22
		}
	}

	if card.Footer != "" {
		c.TextCentered(card.Footer, mid, float64(rect.Max.Y-16), env.Fonts.Face(sizeTinyBold, true), accent)
	}
}
