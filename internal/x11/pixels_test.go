package x11

import (
	"bytes"
	"testing"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/geometry"
)

func TestFormatForDepth(t *testing.T) {
	tests := []struct {
		depth    byte
		expected capture.PixelFormat
	}{
		{24, capture.PixelFormatBGRA},
		{32, capture.PixelFormatBGRA},
		{16, capture.PixelFormatUnknown},
		{8, capture.PixelFormatUnknown},
	}
	for _, tt := range tests {
		if got := formatForDepth(tt.depth); got != tt.expected {
			t.Errorf("depth %d: expected %s, got %s", tt.depth, tt.expected, got)
		}
	}
}

func TestMakeOpaque(t *testing.T) {
	pix := []byte{1, 2, 3, 0, 4, 5, 6, 7}
	makeOpaque(pix)
	if !bytes.Equal(pix, []byte{1, 2, 3, 0xff, 4, 5, 6, 0xff}) {
		t.Errorf("unexpected pixels %v", pix)
	}
}

func TestBlit(t *testing.T) {
	tests := []struct {
		name          string
		at            geometry.Rect
		src           []byte
		expectedError bool
		expectedRow1  []byte
	}{
		{
			name:         "Bottom Right Pixel",
			at:           geometry.New(2, 1, 1, 1),
			src:          []byte{9, 9, 9, 9},
			expectedRow1: []byte{0, 0, 0, 0, 0, 0, 0, 0, 9, 9, 9, 9},
		},
		{
			name:         "Full Row",
			at:           geometry.New(0, 1, 3, 1),
			src:          bytes.Repeat([]byte{7}, 12),
			expectedRow1: bytes.Repeat([]byte{7}, 12),
		},
		{
			name:          "Short Source",
			at:            geometry.New(0, 0, 2, 1),
			src:           []byte{1, 2, 3, 4},
			expectedError: true,
		},
		{
			name:          "Outside Destination",
			at:            geometry.New(2, 1, 2, 1),
			src:           make([]byte, 8),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 3*2*4)
			err := blit(dst, 3, tt.src, tt.at)
			if tt.expectedError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(dst[12:], tt.expectedRow1) {
				t.Errorf("expected row %v, got %v", tt.expectedRow1, dst[12:])
			}
			if !bytes.Equal(dst[:12], make([]byte, 12)) {
				t.Errorf("first row should be untouched, got %v", dst[:12])
			}
		})
	}
}
