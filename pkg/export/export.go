// Package export writes rendered canvases to disk as PNG files, cropping
// the nominal allocation down to the content height first.
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/pressplate/pressplate/pkg/errors"
)

// PNG crops img to finalHeight rows (when shorter than the image) and
// writes it to path. The write goes through a uniquely named temp file in
// the destination directory and a rename, so a crash never leaves a partial
// file at path.
func PNG(img image.Image, finalHeight int, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	b := img.Bounds()
	if finalHeight > 0 && finalHeight < b.Dy() {
		img = imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+finalHeight))
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeExportFailed, err, "creating output directory %s", dir)
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "creating temp file for %s", path)
	}

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeExportFailed, err, "encoding %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeExportFailed, err, "writing %s", path)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeExportFailed, err, "moving %s into place", path)
	}
	return nil
}
