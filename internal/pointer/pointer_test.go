package pointer

import (
	"errors"
	"testing"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/domain/domaintest"
	"github.com/genricoloni/snowcap/internal/geometry"
	"go.uber.org/zap"
)

type fakeDevice struct {
	pos    geometry.Point
	units  domain.Units
	err    error
	closed bool
}

func (f *fakeDevice) Position() (geometry.Point, domain.Units, error) {
	return f.pos, f.units, f.err
}

func (f *fakeDevice) Close() error {
	f.closed = true
	return nil
}

func logicalDisplay(id uint32, x, y, w, h int, scale float64) *domaintest.Display {
	d := domaintest.NewDisplay(id, x, y, w, h)
	d.Geo.Units = domain.UnitsLogical
	d.Geo.ScaleFactor = scale
	return d
}

func TestLocate(t *testing.T) {
	retina := logicalDisplay(1, 0, 0, 1440, 900, 2)
	side := logicalDisplay(2, 1440, 0, 1920, 1080, 1)
	broken := domaintest.NewDisplay(3, 0, 0, 100, 100)
	broken.GeoErr = errors.New("display gone")

	tests := []struct {
		name          string
		device        *fakeDevice
		source        *domaintest.Source
		expected      geometry.Point
		expectedError error
	}{
		{
			name:     "Physical Position Passes Through",
			device:   &fakeDevice{pos: geometry.Point{X: 2500, Y: 10}, units: domain.UnitsPhysical},
			source:   domaintest.NewSource(),
			expected: geometry.Point{X: 2500, Y: 10},
		},
		{
			name:     "Logical Position On Scaled Display",
			device:   &fakeDevice{pos: geometry.Point{X: 100, Y: 50}, units: domain.UnitsLogical},
			source:   domaintest.NewSource(retina, side),
			expected: geometry.Point{X: 200, Y: 100},
		},
		{
			name:     "Logical Position On Unscaled Display",
			device:   &fakeDevice{pos: geometry.Point{X: 1500, Y: 20}, units: domain.UnitsLogical},
			source:   domaintest.NewSource(retina, side),
			expected: geometry.Point{X: 1500, Y: 20},
		},
		{
			name:     "Broken Display Skipped",
			device:   &fakeDevice{pos: geometry.Point{X: 10, Y: 10}, units: domain.UnitsLogical},
			source:   domaintest.NewSource(broken, retina),
			expected: geometry.Point{X: 20, Y: 20},
		},
		{
			name:          "Logical Position Off Screen",
			device:        &fakeDevice{pos: geometry.Point{X: -5, Y: -5}, units: domain.UnitsLogical},
			source:        domaintest.NewSource(retina),
			expectedError: ErrOffScreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.device, tt.source, zap.NewNop())

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestLocate_PhysicalDisplayGeometry(t *testing.T) {
	// physical 2560x1600 at scale 2 is 1280x800 logical
	d := domaintest.NewDisplay(1, 0, 0, 2560, 1600)
	d.Geo.ScaleFactor = 2

	got, err := Locate(&fakeDevice{pos: geometry.Point{X: 1000, Y: 700}, units: domain.UnitsLogical},
		domaintest.NewSource(d), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (geometry.Point{X: 2000, Y: 1400}) {
		t.Errorf("unexpected position %+v", got)
	}
}

func TestLocate_Errors(t *testing.T) {
	devErr := errors.New("no pointer")
	if _, err := Locate(&fakeDevice{err: devErr}, domaintest.NewSource(), zap.NewNop()); !errors.Is(err, devErr) {
		t.Errorf("expected device error, got %v", err)
	}

	srcErr := errors.New("no displays")
	src := &domaintest.Source{Err: srcErr}
	if _, err := Locate(&fakeDevice{units: domain.UnitsLogical}, src, zap.NewNop()); !errors.Is(err, srcErr) {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestCurrent(t *testing.T) {
	dev := &fakeDevice{pos: geometry.Point{X: 3, Y: 4}, units: domain.UnitsPhysical}
	open := func(*zap.Logger) (Device, error) { return dev, nil }

	got, err := Current(open, domaintest.NewSource(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (geometry.Point{X: 3, Y: 4}) {
		t.Errorf("unexpected position %+v", got)
	}
	if !dev.closed {
		t.Error("device was not closed")
	}

	openErr := errors.New("no display server")
	failing := func(*zap.Logger) (Device, error) { return nil, openErr }
	if _, err := Current(failing, domaintest.NewSource(), zap.NewNop()); !errors.Is(err, openErr) {
		t.Errorf("expected open error, got %v", err)
	}
}
