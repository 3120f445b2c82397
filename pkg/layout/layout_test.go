package layout

import (
	"image/color"
	"testing"

	"github.com/pressplate/pressplate/pkg/canvas"
	"github.com/pressplate/pressplate/pkg/fonts"
)

func testEnv(width int) Env {
	return Env{
		Fonts: fonts.Embedded(),
		Palette: Palette{
			Background:    color.NRGBA{R: 0x0f, G: 0x14, B: 0x19, A: 0xff},
			Primary:       color.NRGBA{R: 0x00, G: 0xd4, B: 0xaa, A: 0xff},
			Secondary:     color.NRGBA{R: 0x1d, G: 0xa1, B: 0xf2, A: 0xff},
			Text:          color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			Muted:         color.NRGBA{R: 0x88, G: 0x99, B: 0xa6, A: 0xff},
			Card:          color.NRGBA{R: 0x19, G: 0x27, B: 0x34, A: 0xff},
			CardHighlight: color.NRGBA{R: 0x1e, G: 0x30, B: 0x44, A: 0xff},
			AccentPurple:  color.NRGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
			AccentOrange:  color.NRGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff},
		},
		Width:  width,
		Report: &Report{},
	}
}

func sampleBlocks() []Block {
	return []Block{
		LogoHeader{Path: "/nonexistent/logo.png", Brand: "OmniBazaar"},
		Title{Text: "YIELD OPPORTUNITY", Subtitle: "45-180% Projected APY"},
		StatBar{Stats: []Stat{{"45-180%", "APY Range"}, {"2.5B XOM", "Treasury"}}},
		CardGrid{
			Height: 200,
			Cards: []Card{
				{Title: "LBP", Subtitle: "Dutch Auction", Value: "80-150% APY", Bullets: []string{"Price starts HIGH"}},
				{Title: "BONDING", Value: "182-260% APY", Bullets: []string{"5-15% discount"}},
			},
		},
		SectionTitle{Text: "LAUNCH TIMELINE", LeadRule: true},
		Timeline{Phases: []TimelinePhase{{"Week 1-2", "LBP Launch", "Price discovery"}}},
		Table{
			Headers:      []string{"Scenario", "LBP", "Blended"},
			Rows:         [][]string{{"Base Case", "+75%", "+65%"}},
			HighlightCol: 3,
			Caption:      "6-month horizon",
		},
		Panel{Title: "TREASURY BACKING", Lines: []string{"2.5 Billion XOM", "Self-funding model"}},
		KVPanel{Left: []KVPair{{"Token:", "XOM"}}, Right: []KVPair{{"Consensus:", "Snowman"}}},
		FeatureRow{Items: []FeatureItem{{"DEX", "10,000+ orders/sec"}}},
		CTABanner{Text: "PARTICIPATION WINDOW IS LIMITED"},
		TextRow{Text: "Not financial advice."},
		Rule{},
		Spacer{Px: 10},
	}
}

func TestComposeCursorMonotonic(t *testing.T) {
	env := testEnv(1200)
	c := canvas.New(1200, 3200, env.Palette.Background)

	y := 20
	for i, b := range sampleBlocks() {
		adv := b.Draw(c, env, y)
		if adv <= 0 {
			t.Fatalf("block %d (%T) advance = %d, want > 0", i, b, adv)
		}
		y += adv
	}
}

func TestComposeReturnsFinalCursor(t *testing.T) {
	env := testEnv(1200)
	c := canvas.New(1200, 3200, env.Palette.Background)

	blocks := sampleBlocks()
	final := Compose(c, env, blocks, 20)

	sum := 20
	for _, b := range blocks {
		// Draw twice is safe: blocks are stateless descriptors.
		sum += b.Draw(c, env, sum)
	}
	if final != sum {
		t.Errorf("Compose final cursor = %d, want %d", final, sum)
	}
	if final <= 20 {
		t.Errorf("Compose final cursor = %d, want > start", final)
	}
}

func TestComposeDeterministic(t *testing.T) {
	env := testEnv(1200)
	a := Compose(canvas.New(1200, 3200, env.Palette.Background), env, sampleBlocks(), 20)
	b := Compose(canvas.New(1200, 3200, env.Palette.Background), env, sampleBlocks(), 20)
	if a != b {
		t.Errorf("Compose not deterministic: %d vs %d", a, b)
	}
}

func TestHeaderFallbackReported(t *testing.T) {
	env := testEnv(1200)
	c := canvas.New(1200, 400, env.Palette.Background)

	adv := LogoHeader{Path: "/nonexistent/logo.png", Brand: "OmniBazaar"}.Draw(c, env, 20)
	if adv != fallbackAdvance {
		t.Errorf("fallback advance = %d, want %d", adv, fallbackAdvance)
	}
	if !env.Report.LogoFallback {
		t.Error("LogoFallback not reported for missing asset")
	}
}

func TestBrandHeaderFallback(t *testing.T) {
	env := testEnv(1200)
	c := canvas.New(1200, 400, env.Palette.Background)

	adv := BrandHeader{GlyphPath: "/nonexistent/globe.png", Brand: "OmniBazaar"}.Draw(c, env, 20)
	if adv != fallbackAdvance {
		t.Errorf("fallback advance = %d, want %d", adv, fallbackAdvance)
	}
	if !env.Report.LogoFallback {
		t.Error("LogoFallback not reported for missing glyph")
	}
}

func TestStatBarPaintsCard(t *testing.T) {
	env := testEnv(1200)
	c := canvas.New(1200, 200, env.Palette.Background)

	StatBar{Stats: []Stat{{"70+", "Blockchains"}}}.Draw(c, env, 20)

	got := c.Image().RGBAAt(300, 90)
	if got.R != env.Palette.Card.R || got.G != env.Palette.Card.G || got.B != env.Palette.Card.B {
		t.Errorf("stat bar interior = %v, want card color %v", got, env.Palette.Card)
	}
	// Outside the margin stays background.
	bg := c.Image().RGBAAt(10, 60)
	if bg.R != env.Palette.Background.R {
		t.Errorf("margin pixel = %v, want background", bg)
	}
}

func TestTableHighlightColumn(t *testing.T) {
	tests := []struct {
		name         string
		highlightCol int
		col          int
		want         bool
	}{
		{"zero value highlights nothing", 0, 0, false},
		{"zero value leaves later columns alone", 0, 2, false},
		{"first column", 1, 0, true},
		{"first column does not bleed", 1, 1, false},
		{"third column", 3, 2, true},
		{"negative highlights nothing", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := Table{HighlightCol: tt.highlightCol}
			if got := tb.highlighted(tt.col); got != tt.want {
				t.Errorf("Table{HighlightCol: %d}.highlighted(%d) = %v, want %v",
					tt.highlightCol, tt.col, got, tt.want)
			}
		})
	}
}

func TestCTABannerGradient(t *testing.T) {
	env := testEnv(1200)
	c := canvas.New(1200, 200, env.Palette.Background)

	bottom := color.NRGBA{R: 0x00, G: 0x99, B: 0x77, A: 0xff}
	CTABanner{Text: "GO", Bottom: bottom, Height: 56}.Draw(c, env, 20)

	top := c.Image().RGBAAt(600, 20)
	if top.G != env.Palette.Primary.G {
		t.Errorf("banner top row = %v, want primary green channel %d", top, env.Palette.Primary.G)
	}
	low := c.Image().RGBAAt(300, 75)
	if low.G != bottom.G {
		t.Errorf("banner bottom row = %v, want %v", low, bottom)
	}
}
