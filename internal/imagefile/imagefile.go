// Package imagefile encodes captured images and writes them to disk.
package imagefile

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/snowcap/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultFormat is used when a path has no recognizable extension
	DefaultFormat = imaging.PNG

	jpegQuality    = 90
	filenameLayout = "20060102-150405"
)

// ParseFormat maps an extension such as "png", ".jpg" or "JPEG" to an encoder format
func ParseFormat(ext string) (imaging.Format, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("unsupported image format %q: %w", strings.TrimPrefix(ext, "."), err)
	}
	return f, nil
}

// FormatFor picks the encoder for path, falling back to DefaultFormat.
// The returned flag is false when the fallback was used.
func FormatFor(path string) (imaging.Format, bool) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return DefaultFormat, false
	}
	return f, true
}

// Encode writes img to w. PNG uses fast compression; JPEG drops alpha.
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format,
		imaging.JPEGQuality(jpegQuality),
		imaging.PNGCompressionLevel(png.BestSpeed),
	); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Save encodes img into path with the format named by its extension.
// Parent directories are created; unknown extensions are written as PNG as-is.
func Save(img image.Image, path string) (err error) {
	format, _ := FormatFor(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, img, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Writer saves captures into the configured output directory
type Writer struct {
	logger *zap.Logger
	cfg    domain.Config
	now    func() time.Time
}

// NewWriter creates a writer for the application output directory
func NewWriter(logger *zap.Logger, cfg domain.Config) *Writer {
	return &Writer{logger: logger, cfg: cfg, now: time.Now}
}

// Write saves img to path, or to a timestamped file in the output directory when
// path is empty. It returns the absolute path written.
func (w *Writer) Write(img image.Image, path string) (string, error) {
	// 1. Resolve the destination
	if path == "" {
		path = w.DefaultPath()
	}

	// 2. Encode and write
	if err := Save(img, path); err != nil {
		return "", err
	}

	b := img.Bounds()
	w.logger.Info("Capture saved",
		zap.String("path", path),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))

	// 3. Return absolute path
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// DefaultPath returns a timestamped file name in the output directory
func (w *Writer) DefaultPath() string {
	ext := strings.TrimPrefix(w.cfg.GetFormat(), ".")
	if _, err := ParseFormat(ext); err != nil {
		w.logger.Warn("Unknown default format, using png", zap.String("format", ext))
		ext = "png"
	}
	name := fmt.Sprintf("snowcap-%s.%s", w.now().Format(filenameLayout), ext)
	return filepath.Join(w.cfg.GetOutputDir(), name)
}
