package monitor

import (
	"errors"
	"testing"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/domain/domaintest"
	"github.com/genricoloni/snowcap/internal/geometry"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDescriptor(t *testing.T) {
	tests := []struct {
		name          string
		geo           domain.DisplayGeometry
		geoErr        error
		expectedRect  geometry.Rect
		expectedScale float64
		degraded      bool
	}{
		{
			name:          "Physical - Used Directly",
			geo:           domain.DisplayGeometry{X: 1920, Y: 0, Width: 2560, Height: 1440, ScaleFactor: 2, Units: domain.UnitsPhysical},
			expectedRect:  geometry.Rect{MinX: 1920, MinY: 0, MaxX: 4480, MaxY: 1440},
			expectedScale: 2,
		},
		{
			name:          "Logical - Scaled To Physical",
			geo:           domain.DisplayGeometry{X: 1440, Y: -100, Width: 1280, Height: 800, ScaleFactor: 2, Units: domain.UnitsLogical},
			expectedRect:  geometry.Rect{MinX: 2880, MinY: -200, MaxX: 5440, MaxY: 1400},
			expectedScale: 2,
		},
		{
			name:          "Logical - Fractional Scale",
			geo:           domain.DisplayGeometry{X: 0, Y: 0, Width: 1000, Height: 500, ScaleFactor: 1.5, Units: domain.UnitsLogical},
			expectedRect:  geometry.Rect{MinX: 0, MinY: 0, MaxX: 1500, MaxY: 750},
			expectedScale: 1.5,
		},
		{
			name:          "Logical - Missing Scale Treated As One",
			geo:           domain.DisplayGeometry{X: 10, Y: 20, Width: 100, Height: 200, Units: domain.UnitsLogical},
			expectedRect:  geometry.Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 220},
			expectedScale: 1,
		},
		{
			name:          "Geometry Error - Fallback Rect",
			geoErr:        errors.New("display went away"),
			expectedRect:  geometry.Zero,
			expectedScale: 1,
			degraded:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &domaintest.Display{DisplayID: 1, DisplayName: "eDP-1", Geo: tt.geo, GeoErr: tt.geoErr}
			desc := NewDescriptor(d, zap.NewNop())

			if desc.Rect() != tt.expectedRect {
				t.Errorf("expected rect %v, got %v", tt.expectedRect, desc.Rect())
			}
			if desc.ScaleFactor() != tt.expectedScale {
				t.Errorf("expected scale %v, got %v", tt.expectedScale, desc.ScaleFactor())
			}
			if desc.Degraded() != tt.degraded {
				t.Errorf("expected degraded %v, got %v", tt.degraded, desc.Degraded())
			}
			if desc.Units() != tt.geo.Units {
				t.Errorf("expected units %q, got %q", tt.geo.Units, desc.Units())
			}
			if desc.Name() != "eDP-1" {
				t.Errorf("expected name eDP-1, got %q", desc.Name())
			}
			if desc.Display() != domain.Display(d) {
				t.Error("descriptor should keep the original display handle")
			}
		})
	}
}

func TestNewDescriptor_WarnsOnGeometryFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d := &domaintest.Display{DisplayName: "ghost", GeoErr: errors.New("boom")}

	NewDescriptor(d, zap.New(core))

	if logs.Len() != 1 {
		t.Fatalf("expected 1 warning, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["display"]; got != "ghost" {
		t.Errorf("expected warning to name the display, got %v", got)
	}
}

func TestDescriptor_LocalCrop(t *testing.T) {
	tests := []struct {
		name     string
		display  *domaintest.Display
		region   geometry.Rect
		expected geometry.Rect
	}{
		{
			name:     "Origin Monitor",
			display:  domaintest.NewDisplay(1, 0, 0, 1920, 1080),
			region:   geometry.Rect{MinX: 100, MinY: 100, MaxX: 500, MaxY: 500},
			expected: geometry.Rect{MinX: 100, MinY: 100, MaxX: 500, MaxY: 500},
		},
		{
			name:     "Offset Monitor Partial",
			display:  domaintest.NewDisplay(2, 1920, 0, 1920, 1080),
			region:   geometry.Rect{MinX: 1000, MinY: 200, MaxX: 2500, MaxY: 800},
			expected: geometry.Rect{MinX: 0, MinY: 200, MaxX: 580, MaxY: 800},
		},
		{
			name:     "Negative Origin",
			display:  domaintest.NewDisplay(3, -1280, -200, 1280, 1024),
			region:   geometry.Rect{MinX: -1000, MinY: 0, MaxX: 1000, MaxY: 1000},
			expected: geometry.Rect{MinX: 280, MinY: 200, MaxX: 1280, MaxY: 1024},
		},
		{
			name:     "Disjoint Region",
			display:  domaintest.NewDisplay(4, 0, 0, 100, 100),
			region:   geometry.Rect{MinX: 500, MinY: 500, MaxX: 600, MaxY: 600},
			expected: geometry.Rect{MinX: 500, MinY: 500, MaxX: 500, MaxY: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := NewDescriptor(tt.display, zap.NewNop())
			if got := desc.LocalCrop(tt.region); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
