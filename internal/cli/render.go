package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pressplate/pressplate/pkg/brief"
	"github.com/pressplate/pressplate/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	briefFile string // TOML brief file, used instead of a built-in name
	theme     string // TOML theme file
	output    string // output PNG path, overrides the theme
	width     int    // canvas width in pixels, overrides the theme
	logo      string // logo image path, overrides the theme
	glyph     string // brand glyph image path, overrides the theme
}

// renderCommand creates the render command for composing and exporting
// infographics.
//
// Default settings come from the theme: a 1200px-wide dark canvas written
// to infographic.png, cropped to the composed content height.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [brief]",
		Short: "Render a brief to a PNG infographic",
		Long: `Render composes the given brief's blocks onto a canvas and writes the
result as a PNG, cropped to the content height.

The brief argument names a built-in brief (see 'pressplate list'). Pass
--brief-file to render a TOML brief instead.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: brief.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			if err := validateSelection(name, opts.briefFile); err != nil {
				return err
			}
			return c.runRender(cmd, name, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path (default from theme)")
	cmd.Flags().StringVar(&opts.briefFile, "brief-file", "", "render a TOML brief file instead of a built-in brief")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels (default from theme)")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "logo image path")
	cmd.Flags().StringVar(&opts.glyph, "glyph", "", "brand glyph image path")

	return cmd
}

// validateSelection checks that exactly one content source was requested.
func validateSelection(name, briefFile string) error {
	if name == "" && briefFile == "" {
		return fmt.Errorf("no brief selected: pass a built-in name (%s) or --brief-file",
			strings.Join(brief.Names(), ", "))
	}
	if name != "" && briefFile != "" {
		return fmt.Errorf("pass either a built-in brief or --brief-file, not both")
	}
	return nil
}

func (c *CLI) runRender(cmd *cobra.Command, name string, opts *renderOpts) error {
	prog := newProgress(c.Logger)

	runner := pipeline.NewRunner(c.Logger)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Brief:     name,
		BriefPath: opts.briefFile,
		ThemePath: opts.theme,
		Output:    opts.output,
		Width:     opts.width,
		Logo:      opts.logo,
		Glyph:     opts.glyph,
	})
	if err != nil {
		return err
	}

	label := name
	if label == "" {
		label = opts.briefFile
	}
	prog.done(fmt.Sprintf("Rendered %s", label))

	printSuccess("Rendered %s", label)
	printFile(result.Path)
	printDetail("%dx%d px · %d blocks", result.Width, result.Height, result.Blocks)
	if result.FontFallback {
		printWarning("requested fonts unavailable, used embedded fonts")
	}
	if result.LogoFallback {
		printWarning("logo asset unavailable, used text header")
	}
	return nil
}
