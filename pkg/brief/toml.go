package brief

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pressplate/pressplate/pkg/errors"
	"github.com/pressplate/pressplate/pkg/hexcolor"
	"github.com/pressplate/pressplate/pkg/layout"
)

// briefFile is the on-disk TOML shape of a brief: a name and an ordered
// [[blocks]] array where each entry carries a type discriminator plus the
// fields of that block kind.
type briefFile struct {
	Name   string        `toml:"name"`
	Blocks []blockConfig `toml:"blocks"`
}

// blockConfig is the union of every block kind's fields. Only the fields
// matching the declared type are read; the rest stay at their zero values.
type blockConfig struct {
	Type string `toml:"type"`

	Text     string `toml:"text"`
	Subtitle string `toml:"subtitle"`
	Size     int    `toml:"size"`
	Bold     bool   `toml:"bold"`
	Color    string `toml:"color"`
	LeadRule bool   `toml:"lead_rule"`

	Px      int `toml:"px"`
	Margin  int `toml:"margin"`
	Advance int `toml:"advance"`
	Height  int `toml:"height"`
	Gap     int `toml:"gap"`
	Radius  int `toml:"radius"`
	Inset   int `toml:"inset"`
	TailGap int `toml:"tail_gap"`

	Top    string `toml:"top"`
	Bottom string `toml:"bottom"`

	AccentBar    bool   `toml:"accent_bar"`
	Gradient     bool   `toml:"gradient"`
	AccentFill   bool   `toml:"accent_fill"`
	BulletPrefix string `toml:"bullet_prefix"`

	Stats  []statConfig  `toml:"stats"`
	Items  []itemConfig  `toml:"items"`
	Phases []phaseConfig `toml:"phases"`
	Cards  []cardConfig  `toml:"cards"`

	Headers      []string   `toml:"headers"`
	Rows         [][]string `toml:"rows"`
	ColX         []int      `toml:"col_x"`
	HighlightCol int        `toml:"highlight_col"` // 1-based, 0 or absent for none
	Caption      string     `toml:"caption"`

	Title string   `toml:"title"`
	Lines []string `toml:"lines"`

	Left  []kvConfig `toml:"left"`
	Right []kvConfig `toml:"right"`

	Path  string `toml:"path"`
	Glyph string `toml:"glyph"`
	Brand string `toml:"brand"`
}

type statConfig struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

type itemConfig struct {
	Name string `toml:"name"`
	Desc string `toml:"desc"`
}

type phaseConfig struct {
	Timing string `toml:"timing"`
	Title  string `toml:"title"`
	Desc   string `toml:"desc"`
}

type cardConfig struct {
	Title    string   `toml:"title"`
	Subtitle string   `toml:"subtitle"`
	Value    string   `toml:"value"`
	Lines    []string `toml:"lines"`
	Bullets  []string `toml:"bullets"`
	Footer   string   `toml:"footer"`
	Accent   string   `toml:"accent"`
}

type kvConfig struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
}

// LoadBrief decodes a TOML brief file into a renderable Brief. Asset paths
// left empty in the file fall back to the theme's logo and glyph paths.
func LoadBrief(path string, theme Theme) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading brief %s", path)
	}

	var bf briefFile
	if err := toml.Unmarshal(data, &bf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBrief, err, "parsing brief %s", path)
	}
	if bf.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidBrief, "brief %s has no name", path)
	}
	if len(bf.Blocks) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBrief, "brief %q has no blocks", bf.Name)
	}

	blocks := make([]layout.Block, 0, len(bf.Blocks))
	for i, bc := range bf.Blocks {
		block, err := bc.build(theme)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBlock, err, "brief %q block %d (%s)", bf.Name, i, bc.Type)
		}
		blocks = append(blocks, block)
	}
	return &Brief{Name: bf.Name, Blocks: blocks}, nil
}

func (bc blockConfig) build(theme Theme) (layout.Block, error) {
	switch bc.Type {
	case "spacer":
		return layout.Spacer{Px: bc.Px}, nil

	case "rule":
		return layout.Rule{Margin: bc.Margin, Advance: bc.Advance}, nil

	case "section":
		return layout.SectionTitle{Text: bc.Text, LeadRule: bc.LeadRule}, nil

	case "title":
		return layout.Title{Text: bc.Text, Subtitle: bc.Subtitle}, nil

	case "text":
		col, err := optionalColor(bc.Color)
		if err != nil {
			return nil, err
		}
		return layout.TextRow{
			Text:    bc.Text,
			Size:    float64(bc.Size),
			Bold:    bc.Bold,
			Color:   col,
			Advance: bc.Advance,
		}, nil

	case "stats":
		stats := make([]layout.Stat, len(bc.Stats))
		for i, s := range bc.Stats {
			stats[i] = layout.Stat{Value: s.Value, Label: s.Label}
		}
		return layout.StatBar{Stats: stats}, nil

	case "features":
		items := make([]layout.FeatureItem, len(bc.Items))
		for i, it := range bc.Items {
			items[i] = layout.FeatureItem{Name: it.Name, Desc: it.Desc}
		}
		return layout.FeatureRow{Items: items}, nil

	case "timeline":
		phases := make([]layout.TimelinePhase, len(bc.Phases))
		for i, p := range bc.Phases {
			phases[i] = layout.TimelinePhase{Timing: p.Timing, Title: p.Title, Desc: p.Desc}
		}
		return layout.Timeline{Phases: phases}, nil

	case "cards":
		if bc.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidBlock, "cards require a positive height")
		}
		cards := make([]layout.Card, len(bc.Cards))
		for i, cc := range bc.Cards {
			accent, err := optionalColor(cc.Accent)
			if err != nil {
				return nil, err
			}
			cards[i] = layout.Card{
				Title:    cc.Title,
				Subtitle: cc.Subtitle,
				Value:    cc.Value,
				Lines:    cc.Lines,
				Bullets:  cc.Bullets,
				Footer:   cc.Footer,
				Accent:   accent,
			}
		}
		return layout.CardGrid{
			Cards:        cards,
			Height:       bc.Height,
			Margin:       bc.Margin,
			Gap:          bc.Gap,
			Radius:       bc.Radius,
			AccentBar:    bc.AccentBar,
			Gradient:     bc.Gradient,
			AccentFill:   bc.AccentFill,
			BulletPrefix: bc.BulletPrefix,
			TailGap:      bc.TailGap,
		}, nil

	case "table":
		return layout.Table{
			Headers:      bc.Headers,
			Rows:         bc.Rows,
			ColX:         bc.ColX,
			Margin:       bc.Margin,
			HighlightCol: bc.HighlightCol,
			Caption:      bc.Caption,
		}, nil

	case "panel":
		return layout.Panel{
			Title:  bc.Title,
			Lines:  bc.Lines,
			Height: bc.Height,
			Margin: bc.Margin,
		}, nil

	case "kv":
		left := make([]layout.KVPair, len(bc.Left))
		for i, kv := range bc.Left {
			left[i] = layout.KVPair{Label: kv.Label, Value: kv.Value}
		}
		right := make([]layout.KVPair, len(bc.Right))
		for i, kv := range bc.Right {
			right[i] = layout.KVPair{Label: kv.Label, Value: kv.Value}
		}
		return layout.KVPanel{Left: left, Right: right, Height: bc.Height}, nil

	case "cta":
		top, err := optionalColor(bc.Top)
		if err != nil {
			return nil, err
		}
		bottom, err := optionalColor(bc.Bottom)
		if err != nil {
			return nil, err
		}
		return layout.CTABanner{
			Text:   bc.Text,
			Top:    top,
			Bottom: bottom,
			Inset:  bc.Inset,
			Height: bc.Height,
			Radius: bc.Radius,
		}, nil

	case "logo":
		path := bc.Path
		if path == "" {
			path = theme.LogoPath
		}
		return layout.LogoHeader{Path: path, Brand: bc.Brand}, nil

	case "brand":
		glyph := bc.Glyph
		if glyph == "" {
			glyph = theme.GlyphPath
		}
		return layout.BrandHeader{GlyphPath: glyph, Brand: bc.Brand}, nil

	case "":
		return nil, errors.New(errors.ErrCodeInvalidBlock, "block has no type")

	default:
		return nil, errors.New(errors.ErrCodeInvalidBlock, "unknown block type %q", bc.Type)
	}
}

// optionalColor parses a hex color string, treating empty as the zero color
// so blocks fall back to their palette defaults.
func optionalColor(hex string) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{}, nil
	}
	if err := errors.ValidateHexColor(hex); err != nil {
		return color.NRGBA{}, err
	}
	return hexcolor.RGB(hex), nil
}
