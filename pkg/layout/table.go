package layout

import (
	"image"

	"github.com/pressplate/pressplate/pkg/canvas"
)

// Table draws a rounded header bar followed by centered rows of values.
// Column centers are evenly spaced inside the margins unless ColX pins them
// explicitly. HighlightCol (1-based) renders that column's values in the
// primary color; the zero value means no highlight.
type Table struct {
	Headers      []string
	Rows         [][]string
	ColX         []int
	Margin       int // default 50
	HighlightCol int
	Caption      string // trailing centered muted line
}

// Draw implements Block.
func (t Table) Draw(c *canvas.Canvas, env Env, y int) int {
	margin := t.Margin
	if margin == 0 {
		margin = 50
	}

	c.FillRoundedRect(image.Rect(margin, y, env.Width-margin, y+32), 5, env.Palette.CardHighlight)

	headerFace := env.Fonts.Face(sizeSmallBold, true)
	for i, h := range t.Headers {
		c.TextCentered(h, float64(t.colCenter(env, margin, i)), float64(y+16), headerFace, env.Palette.Muted)
	}
	y += 36
	adv := 36

	rowFace := env.Fonts.Face(sizeSmall, false)
	for _, row := range t.Rows {
		for i, val := range row {
			col := env.Palette.Text
			if t.highlighted(i) {
				col = env.Palette.Primary
			}
			c.TextCentered(val, float64(t.colCenter(env, margin, i)), float64(y+11), rowFace, col)
		}
		y += 25
		adv += 25
	}

	y += 4
	adv += 4
	if t.Caption != "" {
		c.TextCentered(t.Caption, float64(env.Width)/2, float64(y), env.Fonts.Face(sizeTiny, false), env.Palette.Muted)
		adv += 30
	}
	return adv
}

// highlighted reports whether the 0-based column index i is the highlight
// column.
func (t Table) highlighted(i int) bool {
	return t.HighlightCol > 0 && i == t.HighlightCol-1
}

// colCenter returns the x center of column i, from ColX when pinned or an
// even split of the usable width otherwise.
func (t Table) colCenter(env Env, margin, i int) int {
	if i < len(t.ColX) {
		return t.ColX[i]
	}
	n := len(t.Headers)
	if n == 0 {
		n = 1
	}
	cw := (env.Width - 2*margin) / n
	return margin + cw*i + cw/2
}
