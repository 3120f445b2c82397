// Package pipeline provides the core rendering pipeline for Pressplate.
//
// This package implements the complete brief → layout → export pipeline
// used by the CLI. Centralizing it keeps behavior consistent for any entry
// point and makes the stages independently testable.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Setup: Resolve the theme, fonts, and brief content
//  2. Draw: Compose the brief's blocks onto a canvas
//  3. Export: Crop to content and write the PNG
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Brief: "yield", Output: "out.png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path)
package pipeline

import (
	"github.com/pressplate/pressplate/pkg/brief"
	"github.com/pressplate/pressplate/pkg/errors"
)

// Options configures a pipeline run. Exactly one of Brief or BriefPath
// selects the content; the rest override the theme's settings.
type Options struct {
	// Brief is the name of a built-in brief.
	Brief string

	// BriefPath is the path to a TOML brief file. Takes precedence over
	// Brief when both are set.
	BriefPath string

	// ThemePath is an optional TOML theme file. Empty uses the default
	// theme.
	ThemePath string

	// Output overrides the theme's output path when non-empty.
	Output string

	// Width overrides the theme's canvas width when positive.
	Width int

	// Logo and Glyph override the theme's asset paths when non-empty.
	Logo  string
	Glyph string
}

// Validate checks that the options select exactly one content source.
func (o Options) Validate() error {
	if o.Brief == "" && o.BriefPath == "" {
		return errors.New(errors.ErrCodeInvalidBrief, "no brief selected")
	}
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "width must not be negative, got %d", o.Width)
	}
	return nil
}

// resolveTheme loads the theme and applies the option overrides.
func (o Options) resolveTheme() (brief.Theme, error) {
	theme := brief.DefaultTheme()
	if o.ThemePath != "" {
		var err error
		theme, err = brief.LoadTheme(o.ThemePath)
		if err != nil {
			return theme, err
		}
	}
	if o.Output != "" {
		theme.OutputPath = o.Output
	}
	if o.Width > 0 {
		theme.Width = o.Width
	}
	if o.Logo != "" {
		theme.LogoPath = o.Logo
	}
	if o.Glyph != "" {
		theme.GlyphPath = o.Glyph
	}
	if err := theme.Validate(); err != nil {
		return theme, err
	}
	return theme, nil
}

// resolveBrief builds the selected content against the resolved theme.
func (o Options) resolveBrief(theme brief.Theme) (*brief.Brief, error) {
	if o.BriefPath != "" {
		return brief.LoadBrief(o.BriefPath, theme)
	}
	return brief.Builtin(o.Brief, theme)
}
