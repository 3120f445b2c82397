package layout

import (
	"image"

	"github.com/pressplate/pressplate/pkg/canvas"
)

// Panel draws a single full-width rounded card with a primary-colored title
// and centered body lines: the first line in the small text style, the rest
// in the tiny muted style.
type Panel struct {
	Title  string
	Lines  []string
	Height int // default 120
	Margin int // default 50
}

// Draw implements Block.
func (p Panel) Draw(c *canvas.Canvas, env Env, y int) int {
	margin := p.Margin
	if margin == 0 {
		margin = 50
	}
	height := p.Height
	if height == 0 {
		height = 120
	}

	c.FillRoundedRect(image.Rect(margin, y, env.Width-margin, y+height), 15, env.Palette.Card)

	cx := float64(env.Width) / 2
	c.TextCentered(p.Title, cx, float64(y+25), env.Fonts.Face(sizeMedium, false), env.Palette.Primary)

	ty := y + 60
	for i, line := range p.Lines {
		face := env.Fonts.Face(sizeSmall, false)
		col := env.Palette.Text
		if i > 0 {
			face = env.Fonts.Face(sizeTiny, false)
			col = env.Palette.Muted
		}
		c.TextCentered(line, cx, float64(ty), face, col)
		ty += 30
	}
	return height + 20
}

// KVPair is one label/value line in a KVPanel column.
type KVPair struct {
	Label string
	Value string
}

// KVPanel draws a full-width rounded card holding two columns of
// label/value pairs, labels muted and values in the text color.
type KVPanel struct {
	Left   []KVPair
	Right  []KVPair
	Height int // default 175
}

// Draw implements Block.
func (p KVPanel) Draw(c *canvas.Canvas, env Env, y int) int {
	height := p.Height
	if height == 0 {
		height = 175
	}

	c.FillRoundedRect(image.Rect(60, y, env.Width-60, y+height), 12, env.Palette.Card)

	labelFace := env.Fonts.Face(sizeSmallBold, true)
	valueFace := env.Fonts.Face(sizeSmall, false)

	ty := y + 18
	for _, kv := range p.Left {
		c.TextLeft(kv.Label, 90, float64(ty), labelFace, env.Palette.Muted)
		c.TextLeft(kv.Value, 280, float64(ty), valueFace, env.Palette.Text)
		ty += 35
	}
	ty = y + 18
	for _, kv := range p.Right {
		c.TextLeft(kv.Label, 620, float64(ty), labelFace, env.Palette.Muted)
		c.TextLeft(kv.Value, 840, float64(ty), valueFace, env.Palette.Text)
		ty += 35
	}
	return height + 20
}
