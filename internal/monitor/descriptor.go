// Package monitor turns platform displays into descriptors with normalized
// rectangles and groups them into per-request registries.
package monitor

import (
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"go.uber.org/zap"
)

// Descriptor pairs a display handle with its rectangle in physical virtual desktop pixels.
// It is computed once at construction and never changes.
type Descriptor struct {
	display  domain.Display
	name     string
	rect     geometry.Rect
	scale    float64
	units    domain.Units
	degraded bool
}

// NewDescriptor reads the display geometry once and normalizes it to physical pixels.
// A failed geometry query is logged and yields the zero rect instead of an error,
// so one bad display never aborts a whole enumeration.
func NewDescriptor(d domain.Display, logger *zap.Logger) *Descriptor {
	desc := &Descriptor{
		display: d,
		name:    d.Name(),
		scale:   1,
	}

	geo, err := d.Geometry()
	if err != nil {
		logger.Warn("Failed to query display geometry, using fallback rect",
			zap.String("display", desc.name),
			zap.Error(err))
		desc.rect = geometry.Zero
		desc.degraded = true
		return desc
	}

	if geo.ScaleFactor > 0 {
		desc.scale = geo.ScaleFactor
	}
	desc.units = geo.Units
	desc.rect = normalize(geo, desc.scale)

	logger.Debug("Display described",
		zap.String("display", desc.name),
		zap.Stringer("rect", desc.rect),
		zap.Float64("scale", desc.scale),
		zap.String("units", string(geo.Units)))

	return desc
}

// normalize converts reported geometry into physical pixels
func normalize(geo domain.DisplayGeometry, scale float64) geometry.Rect {
	if geo.Units != domain.UnitsLogical {
		return geometry.New(geo.X, geo.Y, geo.Width, geo.Height)
	}
	return geometry.New(
		int(float64(geo.X)*scale),
		int(float64(geo.Y)*scale),
		int(float64(geo.Width)*scale),
		int(float64(geo.Height)*scale),
	)
}

// Display returns the underlying platform handle
func (d *Descriptor) Display() domain.Display {
	return d.display
}

// Name returns the display name captured at construction
func (d *Descriptor) Name() string {
	return d.name
}

// Rect returns the display rectangle in physical virtual desktop pixels
func (d *Descriptor) Rect() geometry.Rect {
	return d.rect
}

// ScaleFactor returns the display scale factor (1 when unknown)
func (d *Descriptor) ScaleFactor() float64 {
	return d.scale
}

// Units returns the units the platform reported the geometry in
func (d *Descriptor) Units() domain.Units {
	return d.units
}

// Degraded reports whether the geometry query failed and Rect is a fallback
func (d *Descriptor) Degraded() bool {
	return d.degraded
}

// LocalCrop clips region to the display and returns it in display-local coordinates
func (d *Descriptor) LocalCrop(region geometry.Rect) geometry.Rect {
	return d.rect.Clip(region).Translate(-d.rect.MinX, -d.rect.MinY)
}
