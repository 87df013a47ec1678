package capture

import (
	"fmt"
	"image"
)

const bytesPerPixel = 4

// BGRAToRGBA writes src with blue and red swapped into dst.
// Both buffers hold whole 4-byte pixels; alpha is copied unchanged.
func BGRAToRGBA(dst, src []byte) error {
	return swapRedBlue(dst, src)
}

// RGBAToBGRA is the inverse of BGRAToRGBA.
func RGBAToBGRA(dst, src []byte) error {
	return swapRedBlue(dst, src)
}

func swapRedBlue(dst, src []byte) error {
	if len(src)%bytesPerPixel != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of pixels", ErrFrameSize, len(src))
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: destination holds %d bytes, need %d", ErrFrameSize, len(dst), len(src))
	}

	for i := 0; i < len(src); i += bytesPerPixel {
		px := src[i : i+bytesPerPixel : i+bytesPerPixel]
		out := dst[i : i+bytesPerPixel : i+bytesPerPixel]
		out[0], out[1], out[2], out[3] = px[2], px[1], px[0], px[3]
	}
	return nil
}

// frameToRGBA validates a BGRA frame and converts it into a new RGBA image
func frameToRGBA(f StreamFrame) (*image.RGBA, error) {
	if f.Format != PixelFormatBGRA {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrFrameFormat, f.Format, PixelFormatBGRA)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: empty frame %dx%d", ErrFrameSize, f.Width, f.Height)
	}
	if want := f.Width * f.Height * bytesPerPixel; len(f.Data) != want {
		return nil, fmt.Errorf("%w: %dx%d frame carries %d bytes, want %d",
			ErrFrameSize, f.Width, f.Height, len(f.Data), want)
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	if err := BGRAToRGBA(img.Pix, f.Data); err != nil {
		return nil, err
	}
	return img, nil
}
