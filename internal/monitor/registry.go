package monitor

import (
	"errors"
	"fmt"
	"math"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// ErrNoTarget is returned when the platform cannot list any display at all
var ErrNoTarget = errors.New("no capture target")

// Registry is an ordered, immutable set of descriptors built for one request.
// Order is the platform enumeration order and is stable for the registry's lifetime.
type Registry struct {
	monitors []*Descriptor
}

type options struct {
	logger        *zap.Logger
	maxGoroutines int
}

// Option customizes Enumerate
type Option func(*options)

// WithLogger sets the logger used while building descriptors
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMaxGoroutines bounds the descriptor fan-out (0 means GOMAXPROCS)
func WithMaxGoroutines(n int) Option {
	return func(o *options) { o.maxGoroutines = n }
}

// Enumerate lists every display of src, builds descriptors in parallel and keeps
// those overlapping region. A nil region keeps all displays.
func Enumerate(src domain.DisplaySource, region *geometry.Rect, opts ...Option) (*Registry, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	displays, err := src.Displays()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list displays: %v", ErrNoTarget, err)
	}

	mapper := iter.Mapper[domain.Display, *Descriptor]{MaxGoroutines: o.maxGoroutines}
	all := mapper.Map(displays, func(d *domain.Display) *Descriptor {
		return NewDescriptor(*d, o.logger)
	})

	if region == nil {
		return &Registry{monitors: all}, nil
	}

	// Degraded descriptors carry a fallback rect that says nothing about where the display is
	kept := make([]*Descriptor, 0, len(all))
	for _, desc := range all {
		if !desc.Degraded() && desc.Rect().Overlaps(*region) {
			kept = append(kept, desc)
		}
	}

	o.logger.Debug("Displays filtered by region",
		zap.Stringer("region", *region),
		zap.Int("total", len(all)),
		zap.Int("kept", len(kept)))

	return &Registry{monitors: kept}, nil
}

// All enumerates every display of src
func All(src domain.DisplaySource, opts ...Option) (*Registry, error) {
	return Enumerate(src, nil, opts...)
}

// ByRegion enumerates the displays of src overlapping r
func ByRegion(src domain.DisplaySource, r geometry.Rect, opts ...Option) (*Registry, error) {
	return Enumerate(src, &r, opts...)
}

// NewRegistry wraps already built descriptors, preserving their order
func NewRegistry(descriptors ...*Descriptor) *Registry {
	return &Registry{monitors: append([]*Descriptor(nil), descriptors...)}
}

// Len returns the number of descriptors
func (r *Registry) Len() int {
	return len(r.monitors)
}

// Descriptors returns a copy of the descriptors in registry order
func (r *Registry) Descriptors() []*Descriptor {
	return append([]*Descriptor(nil), r.monitors...)
}

// Rects returns one rectangle per descriptor, in registry order
func (r *Registry) Rects() []geometry.Rect {
	rects := make([]geometry.Rect, len(r.monitors))
	for i, m := range r.monitors {
		rects[i] = m.Rect()
	}
	return rects
}

// BoundingBox returns the smallest rect containing every descriptor with a known
// geometry, or the zero rect when there is none.
func (r *Registry) BoundingBox() geometry.Rect {
	var box geometry.Rect
	found := false
	for _, m := range r.monitors {
		if m.Degraded() {
			continue
		}
		if !found {
			box, found = m.Rect(), true
			continue
		}
		box = box.Union(m.Rect())
	}
	return box
}

// Located returns the descriptors whose geometry query succeeded, in registry order
func (r *Registry) Located() []*Descriptor {
	located := make([]*Descriptor, 0, len(r.monitors))
	for _, m := range r.monitors {
		if !m.Degraded() {
			located = append(located, m)
		}
	}
	return located
}

// At returns the first located descriptor whose rect contains p
func (r *Registry) At(p geometry.Point) (*Descriptor, bool) {
	for _, m := range r.monitors {
		if !m.Degraded() && m.Rect().Contains(p) {
			return m, true
		}
	}
	return nil, false
}

// ScaleFactorsConsistent reports whether every display of src shares the same
// scale factor, along with the factors seen. Zero or one display is consistent.
func ScaleFactorsConsistent(src domain.DisplaySource, logger *zap.Logger) (bool, []float64) {
	reg, err := All(src, WithLogger(logger))
	if err != nil {
		logger.Warn("Failed to enumerate displays for scale check", zap.Error(err))
		return true, nil
	}

	factors := make([]float64, 0, reg.Len())
	for _, m := range reg.monitors {
		factors = append(factors, m.ScaleFactor())
	}

	for _, f := range factors[min(1, len(factors)):] {
		if !closeFloat32(f, factors[0]) {
			return false, factors
		}
	}
	return true, factors
}

// closeFloat32 compares within float32 machine epsilon
func closeFloat32(a, b float64) bool {
	const epsilon = 1.1920929e-07
	return math.Abs(a-b) < epsilon
}
