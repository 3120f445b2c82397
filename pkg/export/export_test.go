package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/pressplate/pressplate/pkg/errors"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	return img
}

func TestPNGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := PNG(testImage(40, 60), 60, path); err != nil {
		t.Fatalf("PNG() error: %v", err)
	}

	got, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 40 || b.Dy() != 60 {
		t.Errorf("output is %dx%d, want 40x60", b.Dx(), b.Dy())
	}
}

func TestPNGCropsToFinalHeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := PNG(testImage(40, 100), 30, path); err != nil {
		t.Fatalf("PNG() error: %v", err)
	}

	got, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if b := got.Bounds(); b.Dy() != 30 {
		t.Errorf("output height = %d, want 30", b.Dy())
	}
}

func TestPNGKeepsShorterImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := PNG(testImage(10, 20), 500, path); err != nil {
		t.Fatalf("PNG() error: %v", err)
	}

	got, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if b := got.Bounds(); b.Dy() != 20 {
		t.Errorf("output height = %d, want 20 (no padding)", b.Dy())
	}
}

func TestPNGCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")
	if err := PNG(testImage(10, 10), 10, path); err != nil {
		t.Fatalf("PNG() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestPNGLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := PNG(testImage(10, 10), 10, filepath.Join(dir, "out.png")); err != nil {
		t.Fatalf("PNG() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestPNGRejectsBadPath(t *testing.T) {
	err := PNG(testImage(10, 10), 10, "out.jpg")
	if err == nil {
		t.Fatal("PNG() = nil, want error for non-png extension")
	}
}

func TestPNGUnwritableDir(t *testing.T) {
	err := PNG(testImage(10, 10), 10, filepath.Join(string(os.PathSeparator), "proc", "nope", "out.png"))
	if err == nil {
		t.Fatal("PNG() = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeExportFailed {
		t.Errorf("error code = %q, want %q", got, errors.ErrCodeExportFailed)
	}
}
