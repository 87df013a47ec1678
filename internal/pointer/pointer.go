// Package pointer reads the mouse pointer position in physical virtual desktop pixels.
//
// Devices are short-lived: open one per query and close it when done.
package pointer

import (
	"errors"
	"fmt"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"go.uber.org/zap"
)

// ErrOffScreen is returned when the pointer is not over any known display
var ErrOffScreen = errors.New("pointer is not over any display")

// Device reports the raw pointer position as the platform sees it
type Device interface {
	// Position returns the pointer position and the units it is expressed in
	Position() (geometry.Point, domain.Units, error)

	// Close releases the platform handle
	Close() error
}

// Opener creates a pointer device; Open is the platform default
type Opener func(logger *zap.Logger) (Device, error)

// Locate converts the device position to physical pixels.
// Logical positions are scaled by the factor of the display they fall on.
func Locate(dev Device, src domain.DisplaySource, logger *zap.Logger) (geometry.Point, error) {
	p, units, err := dev.Position()
	if err != nil {
		return geometry.Point{}, fmt.Errorf("failed to read pointer position: %w", err)
	}
	if units != domain.UnitsLogical {
		return p, nil
	}

	displays, err := src.Displays()
	if err != nil {
		return geometry.Point{}, fmt.Errorf("failed to list displays: %w", err)
	}

	for _, d := range displays {
		geo, err := d.Geometry()
		if err != nil {
			logger.Debug("Skipping display without geometry", zap.String("display", d.Name()), zap.Error(err))
			continue
		}

		scale := geo.ScaleFactor
		if scale <= 0 {
			scale = 1
		}
		if logicalRect(geo, scale).Contains(p) {
			return geometry.Point{
				X: int(float64(p.X) * scale),
				Y: int(float64(p.Y) * scale),
			}, nil
		}
	}

	return geometry.Point{}, ErrOffScreen
}

// logicalRect returns the display bounds in logical pixels
func logicalRect(geo domain.DisplayGeometry, scale float64) geometry.Rect {
	if geo.Units == domain.UnitsLogical {
		return geometry.New(geo.X, geo.Y, geo.Width, geo.Height)
	}
	return geometry.New(
		int(float64(geo.X)/scale),
		int(float64(geo.Y)/scale),
		int(float64(geo.Width)/scale),
		int(float64(geo.Height)/scale),
	)
}

// Current opens a device, locates the pointer and closes the device again
func Current(open Opener, src domain.DisplaySource, logger *zap.Logger) (geometry.Point, error) {
	dev, err := open(logger)
	if err != nil {
		return geometry.Point{}, err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			logger.Debug("Failed to close pointer device", zap.Error(err))
		}
	}()

	return Locate(dev, src, logger)
}
