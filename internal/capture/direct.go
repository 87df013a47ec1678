package capture

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/genricoloni/snowcap/internal/monitor"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
)

// Grabber reads a rectangle of the virtual desktop straight from the frame buffer
//
//go:generate mockgen -destination=mocks/grabber_mock.go -package=mocks github.com/genricoloni/snowcap/internal/capture Grabber
type Grabber interface {
	// CaptureRect returns the pixels of r, given in absolute desktop coordinates
	CaptureRect(r image.Rectangle) (*image.RGBA, error)
}

// Direct captures monitors synchronously through a Grabber.
// It needs no permission handshake and cannot hide individual windows.
type Direct struct {
	logger  *zap.Logger
	grabber Grabber
}

// NewDirect creates a direct capturer
func NewDirect(logger *zap.Logger, grabber Grabber) *Direct {
	return &Direct{logger: logger, grabber: grabber}
}

// Capture grabs the whole monitor, or crop when given (monitor-local coordinates)
func (d *Direct) Capture(ctx context.Context, mon *monitor.Descriptor, crop *geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if exclude != nil {
		d.logger.Debug("Direct capture cannot exclude windows, ignoring",
			zap.String("monitor", mon.Name()))
	}

	area := mon.Rect()
	if crop != nil {
		area = crop.Translate(area.MinX, area.MinY)
	}

	// Grabbers on logical-unit platforms address the desktop in points
	grab := area
	if mon.Units() == domain.UnitsLogical && mon.ScaleFactor() != 1 {
		grab = toLogical(area, mon.ScaleFactor())
	}

	img, err := d.grabber.CaptureRect(grab.Image())
	if err != nil {
		return nil, fmt.Errorf("direct capture of %v failed: %w", area, err)
	}
	if img == nil {
		return nil, fmt.Errorf("direct capture of %v returned no frame", area)
	}

	if img.Bounds().Dx() != area.Width() || img.Bounds().Dy() != area.Height() {
		d.logger.Debug("Resampling frame to physical size",
			zap.String("monitor", mon.Name()),
			zap.Stringer("grabbed", img.Bounds().Size()),
			zap.Stringer("area", area))
		img = resample(img, area.Width(), area.Height())
	}
	return img, nil
}

// toLogical divides a physical rect by scale, growing it to whole points
func toLogical(r geometry.Rect, scale float64) geometry.Rect {
	return geometry.Rect{
		MinX: int(math.Floor(float64(r.MinX) / scale)),
		MinY: int(math.Floor(float64(r.MinY) / scale)),
		MaxX: int(math.Ceil(float64(r.MaxX) / scale)),
		MaxY: int(math.Ceil(float64(r.MaxY) / scale)),
	}
}

func resample(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// PermissionGranted is always true for direct capture
func (d *Direct) PermissionGranted() bool {
	return true
}

// RequestPermission is a no-op for direct capture
func (d *Direct) RequestPermission() bool {
	return true
}
