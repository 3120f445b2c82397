package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/pressplate/pressplate/pkg/errors"
)

func testRunner() *Runner {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.ErrorLevel)
	return NewRunner(logger)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"builtin brief", Options{Brief: "yield"}, false},
		{"brief file", Options{BriefPath: "b.toml"}, false},
		{"both set", Options{Brief: "yield", BriefPath: "b.toml"}, false},
		{"nothing selected", Options{}, true},
		{"zero width uses theme default", Options{Brief: "yield", Width: 0}, false},
		{"negative width", Options{Brief: "yield", Width: -10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidateNegativeWidthMessage(t *testing.T) {
	err := Options{Brief: "yield", Width: -10}.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for negative width")
	}
	// Zero is accepted as "use the theme width", so the message must not
	// claim the value has to be positive.
	if !strings.Contains(err.Error(), "must not be negative") {
		t.Errorf("Validate() error = %q, want it to say the width must not be negative", err)
	}
}

func TestExecuteBuiltin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	result, err := testRunner().Execute(context.Background(), Options{
		Brief:  "yield",
		Output: out,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Path != out {
		t.Errorf("Path = %q, want %q", result.Path, out)
	}
	if result.Width != 1200 {
		t.Errorf("Width = %d, want 1200", result.Width)
	}
	if result.Height <= 0 || result.Height > 3200 {
		t.Errorf("Height = %d, want within (0, 3200]", result.Height)
	}
	if result.Blocks == 0 {
		t.Error("Blocks = 0, want > 0")
	}

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != result.Width || b.Dy() != result.Height {
		t.Errorf("file is %dx%d, result says %dx%d", b.Dx(), b.Dy(), result.Width, result.Height)
	}
}

func TestExecuteCropsToContent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	result, err := testRunner().Execute(context.Background(), Options{
		Brief:  "yield",
		Output: out,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	// The yield brief is far shorter than the nominal allocation.
	if result.Height >= 3200 {
		t.Errorf("Height = %d, want cropped below the nominal 3200", result.Height)
	}
}

func TestExecuteDeterministicHeight(t *testing.T) {
	dir := t.TempDir()
	runner := testRunner()

	var heights [2]int
	for i := range heights {
		out := filepath.Join(dir, "out.png")
		result, err := runner.Execute(context.Background(), Options{Brief: "platform", Output: out})
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		heights[i] = result.Height
	}
	if heights[0] != heights[1] {
		t.Errorf("heights differ across runs: %d vs %d", heights[0], heights[1])
	}
}

func TestExecuteBriefFile(t *testing.T) {
	dir := t.TempDir()
	briefPath := filepath.Join(dir, "brief.toml")
	content := `
name = "mini"

[[blocks]]
type = "title"
text = "SMALL"

[[blocks]]
type = "text"
text = "body"
`
	if err := os.WriteFile(briefPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.png")
	result, err := testRunner().Execute(context.Background(), Options{
		BriefPath: briefPath,
		Output:    out,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Blocks != 2 {
		t.Errorf("Blocks = %d, want 2", result.Blocks)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestExecuteWidthOverride(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	result, err := testRunner().Execute(context.Background(), Options{
		Brief:  "yield",
		Output: out,
		Width:  900,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Width != 900 {
		t.Errorf("Width = %d, want 900", result.Width)
	}
}

func TestExecuteUnknownBrief(t *testing.T) {
	_, err := testRunner().Execute(context.Background(), Options{
		Brief:  "nope",
		Output: filepath.Join(t.TempDir(), "out.png"),
	})
	if err == nil {
		t.Fatal("Execute() = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeBriefNotFound {
		t.Errorf("error code = %q, want %q", got, errors.ErrCodeBriefNotFound)
	}
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "out.png")
	_, err := testRunner().Execute(ctx, Options{Brief: "yield", Output: out})
	if err == nil {
		t.Fatal("Execute() = nil, want context error")
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("output written despite cancelled context")
	}
}

func TestExecuteReportsLogoFallback(t *testing.T) {
	// The default theme names no logo file, so the yield brief's logo
	// header falls back to text.
	result, err := testRunner().Execute(context.Background(), Options{
		Brief:  "yield",
		Output: filepath.Join(t.TempDir(), "out.png"),
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !result.LogoFallback {
		t.Error("LogoFallback = false, want true without a logo asset")
	}
}
