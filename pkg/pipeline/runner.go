package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pressplate/pressplate/pkg/canvas"
	"github.com/pressplate/pressplate/pkg/export"
	"github.com/pressplate/pressplate/pkg/fonts"
	"github.com/pressplate/pressplate/pkg/layout"
)

// Stats records per-stage durations for a pipeline run.
type Stats struct {
	SetupTime  time.Duration
	DrawTime   time.Duration
	ExportTime time.Duration
}

// Result describes a completed pipeline run.
type Result struct {
	// Path is where the PNG was written.
	Path string

	// Width and Height are the dimensions of the exported image after
	// cropping to content.
	Width  int
	Height int

	// Blocks is the number of blocks composed.
	Blocks int

	// FontFallback reports that the requested fonts could not be loaded
	// and the embedded Go fonts were used instead.
	FontFallback bool

	// LogoFallback reports that a logo asset could not be loaded and a
	// text header was drawn instead.
	LogoFallback bool

	Stats Stats
}

// Runner executes the rendering pipeline. It is stateless apart from the
// logger, so one Runner can serve multiple runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete setup → draw → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Stage 1: Setup
	setupStart := time.Now()
	theme, err := opts.resolveTheme()
	if err != nil {
		return nil, err
	}
	family := fonts.Load(theme.FontRegular, theme.FontBold)
	if family.Fallback {
		r.Logger.Warn("requested fonts unavailable, using embedded fonts",
			"regular", theme.FontRegular,
			"bold", theme.FontBold)
	}
	b, err := opts.resolveBrief(theme)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Path:         theme.OutputPath,
		Blocks:       len(b.Blocks),
		FontFallback: family.Fallback,
	}
	result.Stats.SetupTime = time.Since(setupStart)

	r.Logger.Info("resolved brief",
		"brief", b.Name,
		"blocks", len(b.Blocks),
		"duration", result.Stats.SetupTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Draw
	drawStart := time.Now()
	c := canvas.New(theme.Width, theme.Height, theme.ResolvePalette().Background)
	report := &layout.Report{}
	env := layout.Env{
		Fonts:   family,
		Palette: theme.ResolvePalette(),
		Width:   theme.Width,
		Report:  report,
	}
	finalY := layout.Compose(c, env, b.Blocks, theme.StartY)
	result.LogoFallback = report.LogoFallback
	result.Stats.DrawTime = time.Since(drawStart)

	finalHeight := finalY + theme.BottomMargin
	if finalHeight > theme.Height {
		finalHeight = theme.Height
	}
	result.Width = theme.Width
	result.Height = finalHeight

	r.Logger.Info("composed layout",
		"blocks", len(b.Blocks),
		"height", finalHeight,
		"duration", result.Stats.DrawTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Export
	exportStart := time.Now()
	if err := export.PNG(c.Image(), finalHeight, theme.OutputPath); err != nil {
		return nil, err
	}
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("exported image",
		"path", theme.OutputPath,
		"width", result.Width,
		"height", result.Height,
		"duration", result.Stats.ExportTime)

	return result, nil
}
