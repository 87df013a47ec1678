package capture

import (
	"fmt"
	"image"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// ScreenSource enumerates displays through the OS frame buffer APIs.
// Bounds are relative to the primary display, in points on macOS and in
// pixels elsewhere (see screenUnits).
type ScreenSource struct {
	logger *zap.Logger
}

// NewScreenSource creates a display source backed by kbinani/screenshot
func NewScreenSource(logger *zap.Logger) *ScreenSource {
	return &ScreenSource{logger: logger}
}

// Displays returns one display per active screen
func (s *ScreenSource) Displays() ([]domain.Display, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, fmt.Errorf("%w: no active displays detected", ErrNotSupported)
	}

	displays := make([]domain.Display, n)
	for i := 0; i < n; i++ {
		displays[i] = screenDisplay{index: i}
	}

	s.logger.Debug("Active displays detected", zap.Int("count", n))
	return displays, nil
}

// screenDisplay is the display at a kbinani index
type screenDisplay struct {
	index int
}

func (d screenDisplay) ID() (uint32, error) {
	return uint32(d.index), nil
}

func (d screenDisplay) Name() string {
	return fmt.Sprintf("Display %d", d.index)
}

func (d screenDisplay) Geometry() (domain.DisplayGeometry, error) {
	b := screenshot.GetDisplayBounds(d.index)
	if b.Empty() {
		return domain.DisplayGeometry{}, fmt.Errorf("display %d reports empty bounds", d.index)
	}
	scale := screenScale(d.index)
	if scale <= 0 {
		scale = 1
	}
	return domain.DisplayGeometry{
		X:           b.Min.X,
		Y:           b.Min.Y,
		Width:       b.Dx(),
		Height:      b.Dy(),
		ScaleFactor: scale,
		Units:       screenUnits,
	}, nil
}

// ScreenGrabber is a Grabber backed by kbinani/screenshot
type ScreenGrabber struct{}

// CaptureRect captures r in absolute desktop coordinates
func (ScreenGrabber) CaptureRect(r image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(r)
}
