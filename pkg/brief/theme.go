package brief

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pressplate/pressplate/pkg/errors"
	"github.com/pressplate/pressplate/pkg/fonts"
	"github.com/pressplate/pressplate/pkg/hexcolor"
	"github.com/pressplate/pressplate/pkg/layout"
)

// Theme holds the visual configuration for a rendering run: canvas
// dimensions, output destination, asset and font paths, and the color
// palette as hex strings. Themes are TOML-decodable so a brief can ship its
// own look.
type Theme struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"` // nominal allocation, cropped to content
	StartY       int    `toml:"start_y"`
	BottomMargin int    `toml:"bottom_margin"`
	OutputPath   string `toml:"output"`

	LogoPath  string `toml:"logo"`
	GlyphPath string `toml:"glyph"`

	FontRegular string `toml:"font_regular"`
	FontBold    string `toml:"font_bold"`

	Palette PaletteConfig `toml:"palette"`
}

// PaletteConfig is the hex-string form of the palette.
type PaletteConfig struct {
	Background    string `toml:"background"`
	Primary       string `toml:"primary"`
	Secondary     string `toml:"secondary"`
	Text          string `toml:"text"`
	Muted         string `toml:"muted"`
	Card          string `toml:"card"`
	CardHighlight string `toml:"card_highlight"`
	AccentPurple  string `toml:"accent_purple"`
	AccentOrange  string `toml:"accent_orange"`
}

// DefaultTheme reproduces the original design constants: a 1200px-wide dark
// canvas with teal and blue accents.
func DefaultTheme() Theme {
	return Theme{
		Width:        1200,
		Height:       3200,
		StartY:       20,
		BottomMargin: 10,
		OutputPath:   "infographic.png",
		FontRegular:  fonts.DefaultRegular,
		FontBold:     fonts.DefaultBold,
		Palette: PaletteConfig{
			Background:    "#0f1419",
			Primary:       "#00d4aa",
			Secondary:     "#1da1f2",
			Text:          "#ffffff",
			Muted:         "#8899a6",
			Card:          "#192734",
			CardHighlight: "#1e3044",
			AccentPurple:  "#9b59b6",
			AccentOrange:  "#f39c12",
		},
	}
}

// LoadTheme decodes a TOML theme file on top of the defaults, so a partial
// file only overrides what it names.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading theme %s", path)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parsing theme %s", path)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate checks dimensions and palette color strings.
func (t Theme) Validate() error {
	if t.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "width must be positive, got %d", t.Width)
	}
	if t.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "height must be positive, got %d", t.Height)
	}
	if err := errors.ValidateOutputPath(t.OutputPath); err != nil {
		return err
	}
	for _, hex := range []string{
		t.Palette.Background, t.Palette.Primary, t.Palette.Secondary,
		t.Palette.Text, t.Palette.Muted, t.Palette.Card,
		t.Palette.CardHighlight, t.Palette.AccentPurple, t.Palette.AccentOrange,
	} {
		if err := errors.ValidateHexColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// ResolvePalette converts the hex palette into draw-ready colors.
// Call Validate first; malformed hex produces undefined colors.
func (t Theme) ResolvePalette() layout.Palette {
	return layout.Palette{
		Background:    hexcolor.RGB(t.Palette.Background),
		Primary:       hexcolor.RGB(t.Palette.Primary),
		Secondary:     hexcolor.RGB(t.Palette.Secondary),
		Text:          hexcolor.RGB(t.Palette.Text),
		Muted:         hexcolor.RGB(t.Palette.Muted),
		Card:          hexcolor.RGB(t.Palette.Card),
		CardHighlight: hexcolor.RGB(t.Palette.CardHighlight),
		AccentPurple:  hexcolor.RGB(t.Palette.AccentPurple),
		AccentOrange:  hexcolor.RGB(t.Palette.AccentOrange),
	}
}
