package imagefile

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/snowcap/internal/config"
	"go.uber.org/zap"
)

func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name          string
		ext           string
		expected      imaging.Format
		expectedError string
	}{
		{name: "Bare Extension", ext: "png", expected: imaging.PNG},
		{name: "Dotted Extension", ext: ".jpg", expected: imaging.JPEG},
		{name: "Upper Case", ext: "JPEG", expected: imaging.JPEG},
		{name: "Bitmap", ext: "bmp", expected: imaging.BMP},
		{name: "Unknown", ext: "webp", expectedError: "unsupported image format \"webp\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.ext)
			if tt.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
					t.Fatalf("expected error containing '%s', got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	if f, ok := FormatFor("shot.tiff"); !ok || f != imaging.TIFF {
		t.Errorf("expected tiff, got %v %v", f, ok)
	}
	if f, ok := FormatFor("shot"); ok || f != DefaultFormat {
		t.Errorf("expected default fallback, got %v %v", f, ok)
	}
	if f, ok := FormatFor("shot.xyz"); ok || f != DefaultFormat {
		t.Errorf("expected default fallback, got %v %v", f, ok)
	}
}

func TestEncode(t *testing.T) {
	img := createTestImage(8, 4, color.RGBA{R: 255, A: 128})

	var buf bytes.Buffer
	if err := Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("result is not a valid PNG: %v", err)
	}
	if _, _, _, a := decoded.At(0, 0).RGBA(); a>>8 != 128 {
		t.Errorf("PNG lost alpha: %d", a>>8)
	}

	buf.Reset()
	if err := Encode(&buf, img, imaging.JPEG); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err = jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("result is not a valid JPEG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("expected 8x4, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestSave(t *testing.T) {
	img := createTestImage(5, 3, color.RGBA{G: 255, A: 255})

	tests := []struct {
		name     string
		file     string
		validate func(t *testing.T, data []byte)
	}{
		{
			name: "PNG By Extension",
			file: "a/b/shot.png",
			validate: func(t *testing.T, data []byte) {
				if _, err := png.Decode(bytes.NewReader(data)); err != nil {
					t.Errorf("expected PNG: %v", err)
				}
			},
		},
		{
			name: "JPEG By Extension",
			file: "shot.jpeg",
			validate: func(t *testing.T, data []byte) {
				if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
					t.Errorf("expected JPEG: %v", err)
				}
			},
		},
		{
			name: "No Extension Falls Back To PNG",
			file: "shot",
			validate: func(t *testing.T, data []byte) {
				if _, err := png.Decode(bytes.NewReader(data)); err != nil {
					t.Errorf("expected PNG: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := Save(img, path); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("file not written at the exact path: %v", err)
			}
			tt.validate(t, data)
		})
	}
}

func TestSave_ErrorNamesPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(blocker, "shot.png")
	err := Save(createTestImage(1, 1, color.Black), path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("expected error naming %s, got %v", path, err)
	}
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.AppConfig{OutputDir: dir, Format: "jpg"}

	w := NewWriter(zap.NewNop(), cfg)
	w.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }

	got, err := w.Write(createTestImage(2, 2, color.White), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := filepath.Join(dir, "snowcap-20240305-140709.jpg")
	if got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("file missing: %v", err)
	}

	explicit := filepath.Join(dir, "custom.png")
	if got, err := w.Write(createTestImage(2, 2, color.White), explicit); err != nil || got != explicit {
		t.Errorf("expected %s, got %s (%v)", explicit, got, err)
	}
}

func TestWriter_DefaultPathUnknownFormat(t *testing.T) {
	w := NewWriter(zap.NewNop(), &config.AppConfig{OutputDir: "/out", Format: "heic"})
	w.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	if got := w.DefaultPath(); got != "/out/snowcap-20240101-000000.png" {
		t.Errorf("unexpected path %s", got)
	}
}
