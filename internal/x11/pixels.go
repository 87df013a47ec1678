package x11

import (
	"fmt"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/geometry"
)

// formatForDepth maps a ZPixmap depth to the frame layout it produces.
// Depths 24 and 32 use 32 bits per pixel in B, G, R, X order on little endian servers.
func formatForDepth(depth byte) capture.PixelFormat {
	switch depth {
	case 24, 32:
		return capture.PixelFormatBGRA
	default:
		return capture.PixelFormatUnknown
	}
}

// makeOpaque sets the fourth byte of every pixel, which X leaves undefined, to 0xff
func makeOpaque(pix []byte) {
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
}

// blit copies a w*h 32bpp source onto dst (dstWidth pixels wide) at (x, y).
// The source rectangle must already lie inside dst.
func blit(dst []byte, dstWidth int, src []byte, at geometry.Rect) error {
	w, h := at.Width(), at.Height()
	if len(src) < w*h*4 {
		return fmt.Errorf("source holds %d bytes, need %d for %dx%d", len(src), w*h*4, w, h)
	}
	if at.MinX < 0 || at.MinY < 0 || at.MaxX > dstWidth || (at.MaxY*dstWidth*4) > len(dst) {
		return fmt.Errorf("blit target %v outside %d pixel wide buffer", at, dstWidth)
	}

	for row := 0; row < h; row++ {
		s := src[row*w*4 : (row+1)*w*4]
		off := ((at.MinY+row)*dstWidth + at.MinX) * 4
		copy(dst[off:off+w*4], s)
	}
	return nil
}
