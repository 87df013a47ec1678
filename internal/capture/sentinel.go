package capture

import "image"

// NewSentinel returns the 1x1 transparent frame produced for placeholder displays.
func NewSentinel() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

// IsSentinel reports whether img has the placeholder dimensions.
// A genuine 1x1 capture is indistinguishable from the placeholder and is treated the same.
func IsSentinel(img image.Image) bool {
	if img == nil {
		return false
	}
	b := img.Bounds()
	return b.Dx() == 1 && b.Dy() == 1
}
