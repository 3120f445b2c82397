// Package fonts loads the typefaces used for infographic text.
//
// A Family pairs a regular and a bold TrueType font and hands out cached
// font.Face values at the sizes the layout engine asks for. Fonts are
// resolved from explicit file paths first, then through system font discovery
// (flopp/go-findfont). When neither works the family silently degrades to the
// Go fonts embedded in the binary, so rendering never fails for lack of a
// font file.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Default font file names, resolved via system font discovery.
const (
	DefaultRegular = "DejaVuSans.ttf"
	DefaultBold    = "DejaVuSans-Bold.ttf"
)

// Family holds a regular/bold typeface pair and a cache of derived faces.
// A Family is safe for concurrent use.
type Family struct {
	regular *truetype.Font
	bold    *truetype.Font

	// Fallback reports whether the embedded Go fonts are in use because
	// the requested fonts could not be loaded.
	Fallback bool

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// Load resolves and parses the given regular and bold fonts. Each argument
// may be a file path or a bare font file name for system lookup. If either
// font cannot be loaded, both fall back to the embedded Go fonts and
// Fallback is set.
func Load(regular, bold string) *Family {
	reg := loadFont(regular)
	bld := loadFont(bold)
	if reg == nil || bld == nil {
		reg, bld = embedded()
		return &Family{regular: reg, bold: bld, Fallback: true, faces: map[faceKey]font.Face{}}
	}
	return &Family{regular: reg, bold: bld, faces: map[faceKey]font.Face{}}
}

// Embedded returns a Family backed by the embedded Go fonts.
func Embedded() *Family {
	reg, bld := embedded()
	return &Family{regular: reg, bold: bld, Fallback: true, faces: map[faceKey]font.Face{}}
}

// Face returns a font.Face at the given point size, using the bold weight
// when requested. Faces are cached per size/weight.
func (f *Family) Face(size float64, bold bool) font.Face {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{size: size, bold: bold}
	if face, ok := f.faces[key]; ok {
		return face
	}

	ft := f.regular
	if bold {
		ft = f.bold
	}
	face := truetype.NewFace(ft, &truetype.Options{Size: size})
	f.faces[key] = face
	return face
}

// loadFont reads and parses a TrueType font from a path or system font name.
// Returns nil if the font cannot be resolved or parsed.
func loadFont(name string) *truetype.Font {
	if name == "" {
		return nil
	}

	path := name
	if _, err := os.Stat(path); err != nil {
		found, err := findfont.Find(name)
		if err != nil {
			return nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return ft
}

var (
	embeddedOnce sync.Once
	embeddedReg  *truetype.Font
	embeddedBold *truetype.Font
)

// embedded parses the Go fonts shipped with the binary. The font data is
// compiled in, so parsing cannot fail at runtime.
func embedded() (*truetype.Font, *truetype.Font) {
	embeddedOnce.Do(func() {
		embeddedReg, _ = truetype.Parse(goregular.TTF)
		embeddedBold, _ = truetype.Parse(gobold.TTF)
	})
	return embeddedReg, embeddedBold
}
