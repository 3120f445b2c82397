// Package brief defines the content model for infographics.
//
// A Brief is a named, ordered list of layout blocks plus the theme used to
// draw them. Two briefs ship built in ("yield" and "platform") carrying the
// original marketing content; arbitrary briefs can be loaded from TOML files
// with the same block vocabulary.
package brief

import (
	"sort"

	"github.com/pressplate/pressplate/pkg/errors"
	"github.com/pressplate/pressplate/pkg/layout"
)

// Brief is a renderable infographic: a name and the block sequence that
// produces it.
type Brief struct {
	Name   string
	Blocks []layout.Block
}

// builders maps built-in brief names to their constructors.
var builders = map[string]func(Theme) *Brief{
	"yield":    yieldBrief,
	"platform": platformBrief,
}

// Names returns the built-in brief names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the built-in brief with the given name, with asset paths
// and palette accents taken from the theme.
func Builtin(name string, theme Theme) (*Brief, error) {
	if err := errors.ValidateBriefName(name); err != nil {
		return nil, err
	}
	build, ok := builders[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeBriefNotFound, "no built-in brief named %q", name)
	}
	return build(theme), nil
}
