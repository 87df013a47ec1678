package engine

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/genricoloni/snowcap/internal/compositor"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/genricoloni/snowcap/internal/imagefile"
	"github.com/genricoloni/snowcap/internal/monitor"
	"github.com/genricoloni/snowcap/internal/pointer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine orchestrates capture requests.
// It picks the monitors in scope, drives the compositor and persists results.
type Engine struct {
	logger      *zap.Logger
	cfg         domain.Config
	source      domain.DisplaySource
	capturer    compositor.Capturer
	openPointer pointer.Opener
	writer      *imagefile.Writer
}

// Request describes one capture
type Request struct {
	// Region limits the capture to a rect of the virtual desktop; nil lets Targets decide
	Region *geometry.Rect
	// Exclude is a window left out of the capture when the backend supports it
	Exclude domain.WindowHandle
}

// MonitorInfo is the printable description of one monitor
type MonitorInfo struct {
	Index       int           `json:"index" yaml:"index"`
	ID          uint32        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Rect        geometry.Rect `json:"rect" yaml:"rect"`
	ScaleFactor float64       `json:"scaleFactor" yaml:"scaleFactor"`
	Degraded    bool          `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	src domain.DisplaySource,
	capturer compositor.Capturer,
	openPointer pointer.Opener,
	writer *imagefile.Writer,
) *Engine {
	return &Engine{
		logger:      logger,
		cfg:         cfg,
		source:      src,
		capturer:    capturer,
		openPointer: openPointer,
		writer:      writer,
	}
}

// newRequestLogger tags every log line of one request with a fresh id
func (e *Engine) newRequestLogger(op string) *zap.Logger {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return e.logger.With(zap.String("request", id), zap.String("op", op))
}

func (e *Engine) newCompositor(logger *zap.Logger) *compositor.Compositor {
	return compositor.New(logger, e.capturer, e.cfg.GetWorkers())
}

func (e *Engine) enumOptions(logger *zap.Logger) []monitor.Option {
	return []monitor.Option{monitor.WithLogger(logger), monitor.WithMaxGoroutines(e.cfg.GetWorkers())}
}

// CaptureAll composites every monitor into one image of the virtual desktop
func (e *Engine) CaptureAll(ctx context.Context, exclude domain.WindowHandle) (*image.RGBA, error) {
	logger := e.newRequestLogger("capture_all")
	img, err := e.newCompositor(logger).CaptureAll(ctx, e.source, exclude)
	if err != nil {
		return nil, err
	}
	logger.Debug("Capture complete", zap.Stringer("size", img.Bounds().Size()))
	return img, nil
}

// CaptureRegion composites region from every monitor it overlaps
func (e *Engine) CaptureRegion(ctx context.Context, region geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error) {
	logger := e.newRequestLogger("capture_region")
	img, err := e.newCompositor(logger).CaptureRegion(ctx, e.source, region, exclude)
	if err != nil {
		return nil, err
	}
	logger.Debug("Capture complete",
		zap.Stringer("region", region),
		zap.Stringer("size", img.Bounds().Size()))
	return img, nil
}

// Capture runs req against the monitors chosen by Targets
func (e *Engine) Capture(ctx context.Context, req Request) (*image.RGBA, error) {
	if req.Region != nil {
		return e.CaptureRegion(ctx, *req.Region, req.Exclude)
	}

	logger := e.newRequestLogger("capture")

	// 1. Pick monitors
	reg, err := e.targets(logger, nil)
	if err != nil {
		return nil, err
	}

	// 2. Composite
	img, err := e.newCompositor(logger).Capture(ctx, reg, nil, req.Exclude)
	if err != nil {
		return nil, err
	}

	logger.Debug("Capture complete",
		zap.Int("monitors", reg.Len()),
		zap.Stringer("size", img.Bounds().Size()))
	return img, nil
}

// CaptureToFile captures req and writes it to path, or to the output directory
// when path is empty. It returns the path written.
func (e *Engine) CaptureToFile(ctx context.Context, req Request, path string) (string, error) {
	img, err := e.Capture(ctx, req)
	if err != nil {
		return "", err
	}
	return e.writer.Write(img, path)
}

// Targets picks the monitors a capture without an explicit region should cover.
// With a region it returns the monitors overlapping it. Otherwise it returns all
// monitors when they share one scale factor, and the monitor under the pointer when not.
func (e *Engine) Targets(region *geometry.Rect) (*monitor.Registry, error) {
	return e.targets(e.logger, region)
}

func (e *Engine) targets(logger *zap.Logger, region *geometry.Rect) (*monitor.Registry, error) {
	if region != nil {
		return monitor.ByRegion(e.source, *region, e.enumOptions(logger)...)
	}

	if ok, factors := monitor.ScaleFactorsConsistent(e.source, logger); !ok {
		mon, _, err := e.targetMonitor(logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Monitors use different scale factors, capturing the monitor under the pointer",
			zap.Float64s("scales", factors),
			zap.String("monitor", mon.Name()))
		return monitor.NewRegistry(mon), nil
	}

	return monitor.All(e.source, e.enumOptions(logger)...)
}

// TargetMonitor returns the monitor under the pointer and the pointer position.
// When the pointer cannot be located it falls back to the first monitor with a known
// geometry and its centre.
func (e *Engine) TargetMonitor() (*monitor.Descriptor, geometry.Point, error) {
	return e.targetMonitor(e.logger)
}

func (e *Engine) targetMonitor(logger *zap.Logger) (*monitor.Descriptor, geometry.Point, error) {
	reg, err := monitor.All(e.source, e.enumOptions(logger)...)
	if err != nil {
		return nil, geometry.Point{}, err
	}
	located := reg.Located()
	if len(located) == 0 {
		return nil, geometry.Point{}, fmt.Errorf("%w: no display with a known geometry", monitor.ErrNoTarget)
	}

	p, err := pointer.Current(e.openPointer, e.source, logger)
	if err == nil {
		if mon, ok := reg.At(p); ok {
			return mon, p, nil
		}
		err = pointer.ErrOffScreen
	}

	first := located[0]
	r := first.Rect()
	centre := geometry.Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
	logger.Warn("Pointer not located, falling back to the first monitor",
		zap.String("monitor", first.Name()),
		zap.Error(err))
	return first, centre, nil
}

// Monitors describes the monitors overlapping region, or all monitors when region is nil
func (e *Engine) Monitors(region *geometry.Rect) ([]MonitorInfo, error) {
	reg, err := monitor.Enumerate(e.source, region, e.enumOptions(e.logger)...)
	if err != nil {
		return nil, err
	}

	infos := make([]MonitorInfo, 0, reg.Len())
	for i, m := range reg.Descriptors() {
		id, err := m.Display().ID()
		if err != nil {
			e.logger.Debug("Display id unavailable", zap.String("monitor", m.Name()), zap.Error(err))
		}
		infos = append(infos, MonitorInfo{
			Index:       i,
			ID:          id,
			Name:        m.Name(),
			Rect:        m.Rect(),
			ScaleFactor: m.ScaleFactor(),
			Degraded:    m.Degraded(),
		})
	}
	return infos, nil
}

// PointerPosition returns the pointer position in physical pixels
func (e *Engine) PointerPosition() (geometry.Point, error) {
	return pointer.Current(e.openPointer, e.source, e.logger)
}

// PermissionGranted reports whether screen capture is currently allowed
func (e *Engine) PermissionGranted() bool {
	return e.capturer.PermissionGranted()
}

// RequestPermission asks the platform for capture rights without waiting for the answer
func (e *Engine) RequestPermission() bool {
	return e.capturer.RequestPermission()
}

// ScaleFactorsConsistent reports whether all monitors share one scale factor
func (e *Engine) ScaleFactorsConsistent() (bool, []float64) {
	return monitor.ScaleFactorsConsistent(e.source, e.logger)
}
