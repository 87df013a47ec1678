// Package compositor merges per-monitor frames into one image of the virtual desktop
// or of an arbitrary region spanning several monitors.
package compositor

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/genricoloni/snowcap/internal/monitor"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
)

// maxCanvasBytes caps a single RGBA allocation (about 11000 x 11000 pixels)
const maxCanvasBytes = 500 * 1024 * 1024

var (
	// ErrNoMonitor is returned when no monitor is in scope for the request
	ErrNoMonitor = errors.New("no monitor produced a frame")

	// ErrNoFrames is returned when every monitor in scope failed to capture
	ErrNoFrames = errors.New("no frames captured")

	// ErrInvalidRegion is returned for inverted or zero-area crop regions
	ErrInvalidRegion = errors.New("invalid capture region")
)

// Capturer produces the pixels of one monitor.
// A non-nil error means the monitor contributed nothing.
//
//go:generate mockgen -destination=mocks/capturer_mock.go -package=mocks github.com/genricoloni/snowcap/internal/compositor Capturer
type Capturer interface {
	// Capture grabs mon, restricted to crop (monitor-local) when non-nil
	Capture(ctx context.Context, mon *monitor.Descriptor, crop *geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error)

	// PermissionGranted reports whether capture is currently allowed
	PermissionGranted() bool

	// RequestPermission asks the platform to grant capture without waiting for the answer
	RequestPermission() bool
}

// Compositor captures every monitor of a registry and pastes the frames onto one canvas
type Compositor struct {
	logger   *zap.Logger
	capturer Capturer
	workers  int
}

// New creates a compositor. workers bounds the parallel capture fan-out (0 means GOMAXPROCS).
func New(logger *zap.Logger, capturer Capturer, workers int) *Compositor {
	return &Compositor{logger: logger, capturer: capturer, workers: workers}
}

// frame is a captured image still paired with the monitor and local crop it came from
type frame struct {
	mon   *monitor.Descriptor
	local *geometry.Rect
	img   *image.RGBA
	err   error
}

// CaptureAll composites every display of src
func (c *Compositor) CaptureAll(ctx context.Context, src domain.DisplaySource, exclude domain.WindowHandle) (*image.RGBA, error) {
	reg, err := monitor.All(src, monitor.WithLogger(c.logger), monitor.WithMaxGoroutines(c.workers))
	if err != nil {
		return nil, err
	}
	return c.Capture(ctx, reg, nil, exclude)
}

// CaptureRegion composites region from the displays of src overlapping it
func (c *Compositor) CaptureRegion(ctx context.Context, src domain.DisplaySource, region geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error) {
	if err := validateRegion(region); err != nil {
		return nil, err
	}
	reg, err := monitor.ByRegion(src, region, monitor.WithLogger(c.logger), monitor.WithMaxGoroutines(c.workers))
	if err != nil {
		return nil, err
	}
	return c.Capture(ctx, reg, &region, exclude)
}

// Capture composites the monitors of reg. With a crop the canvas covers exactly crop,
// otherwise it covers the registry bounding box.
func (c *Compositor) Capture(ctx context.Context, reg *monitor.Registry, crop *geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if crop != nil {
		if err := validateRegion(*crop); err != nil {
			return nil, err
		}
	}

	if reg.Len() == 0 {
		return nil, ErrNoMonitor
	}

	// Degraded monitors have no usable position and contribute nothing
	monitors := reg.Located()
	if skipped := reg.Len() - len(monitors); skipped > 0 {
		c.logger.Warn("Skipping monitors without geometry", zap.Int("count", skipped))
	}

	switch len(monitors) {
	case 0:
		return nil, fmt.Errorf("%w: no monitor reported its geometry", ErrNoFrames)
	case 1:
		return c.captureSingle(ctx, monitors[0], crop, exclude)
	default:
		return c.captureMulti(ctx, reg, monitors, crop, exclude)
	}
}

// captureSingle is the one-monitor fast path: no canvas, no fan-out
func (c *Compositor) captureSingle(ctx context.Context, mon *monitor.Descriptor, crop *geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error) {
	var local *geometry.Rect
	size := image.Pt(mon.Rect().Width(), mon.Rect().Height())

	if crop != nil {
		l := mon.LocalCrop(*crop)
		if l.Area() == 0 {
			return nil, fmt.Errorf("%w: %v does not intersect monitor %v", ErrInvalidRegion, *crop, mon.Rect())
		}
		local = &l
		size = image.Pt(l.Width(), l.Height())
	}

	img, err := c.capturer.Capture(ctx, mon, local, exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to capture monitor %v: %w", mon.Rect(), err)
	}
	if img == nil {
		return nil, fmt.Errorf("failed to capture monitor %v: no frame returned", mon.Rect())
	}

	if capture.IsSentinel(img) {
		c.logger.Info("Placeholder frame, returning blank image",
			zap.String("monitor", mon.Name()),
			zap.Int("width", size.X),
			zap.Int("height", size.Y))
		if err := checkCanvas(size.X, size.Y); err != nil {
			return nil, err
		}
		return image.NewRGBA(image.Rectangle{Max: size}), nil
	}

	c.logger.Debug("Single monitor captured",
		zap.String("monitor", mon.Name()),
		zap.Stringer("rect", mon.Rect()),
		zap.Stringer("size", img.Bounds().Size()))

	return img, nil
}

// captureMulti captures monitors in parallel and pastes them in registry order
func (c *Compositor) captureMulti(ctx context.Context, reg *monitor.Registry, monitors []*monitor.Descriptor, crop *geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error) {
	// 1. Canvas geometry
	origin := reg.BoundingBox()
	if crop != nil {
		origin = *crop
	}
	if err := checkCanvas(origin.Width(), origin.Height()); err != nil {
		return nil, err
	}

	// 2. Per-monitor jobs, dropping monitors the crop does not reach
	jobs := make([]frame, 0, len(monitors))
	for _, mon := range monitors {
		job := frame{mon: mon}
		if crop != nil {
			l := mon.LocalCrop(*crop)
			if !mon.Rect().Overlaps(*crop) || l.Area() == 0 {
				c.logger.Debug("Monitor outside crop, skipping",
					zap.String("monitor", mon.Name()),
					zap.Stringer("rect", mon.Rect()))
				continue
			}
			job.local = &l
		}
		jobs = append(jobs, job)
	}

	// 3. Parallel capture, results stay in job order
	mapper := iter.Mapper[frame, frame]{MaxGoroutines: c.workers}
	results := mapper.Map(jobs, func(j *frame) frame {
		out := *j
		out.img, out.err = c.capturer.Capture(ctx, j.mon, j.local, exclude)
		if out.err == nil && out.img == nil {
			out.err = errors.New("no frame returned")
		}
		return out
	})

	// 4. Drop failures
	var errs error
	frames := results[:0]
	for _, f := range results {
		if f.err != nil {
			c.logger.Warn("Monitor capture failed, dropping frame",
				zap.String("monitor", f.mon.Name()),
				zap.Stringer("rect", f.mon.Rect()),
				zap.Error(f.err))
			errs = multierr.Append(errs, fmt.Errorf("monitor %v: %w", f.mon.Rect(), f.err))
			continue
		}
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		if errs == nil {
			return nil, ErrNoFrames
		}
		return nil, fmt.Errorf("%w: %w", ErrNoFrames, errs)
	}

	// 5. Sequential paste, later monitors win on overlap
	canvas := image.NewRGBA(image.Rect(0, 0, origin.Width(), origin.Height()))
	for _, f := range frames {
		offset := pasteOffset(f.mon, f.local, origin)
		xdraw.Copy(canvas, offset, f.img, f.img.Bounds(), xdraw.Src, nil)
	}

	c.logger.Debug("Frames composited",
		zap.Int("monitors", len(monitors)),
		zap.Int("frames", len(frames)),
		zap.Stringer("canvas", origin))

	return canvas, nil
}

// pasteOffset returns where a frame lands on a canvas whose top-left is origin.Min
func pasteOffset(mon *monitor.Descriptor, local *geometry.Rect, origin geometry.Rect) image.Point {
	p := mon.Rect().Min()
	if local != nil {
		p.X += local.MinX
		p.Y += local.MinY
	}
	return image.Pt(p.X-origin.MinX, p.Y-origin.MinY)
}

func validateRegion(r geometry.Rect) error {
	if !r.Valid() || r.Area() == 0 {
		return fmt.Errorf("%w: %v has no area", ErrInvalidRegion, r)
	}
	return nil
}

func checkCanvas(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: empty canvas %dx%d", ErrInvalidRegion, width, height)
	}
	if int64(width)*int64(height)*4 > maxCanvasBytes {
		return fmt.Errorf("resolution too large for single capture: %dx%d (exceeds 500MB)", width, height)
	}
	return nil
}
