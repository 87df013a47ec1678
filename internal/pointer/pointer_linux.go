//go:build linux

package pointer

import (
	"errors"
	"fmt"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/genricoloni/snowcap/internal/x11"
	"go.uber.org/zap"
)

// x11Device queries the pointer over its own X connection
type x11Device struct {
	conn *x11.Conn
}

// Open connects to the default X display
func Open(logger *zap.Logger) (Device, error) {
	conn, err := x11.Open(logger, "")
	if err != nil {
		return nil, fmt.Errorf("failed to open pointer device: %w", err)
	}
	return &x11Device{conn: conn}, nil
}

// Position returns the pointer in root window coordinates, which X11 reports in physical pixels
func (d *x11Device) Position() (geometry.Point, domain.Units, error) {
	p, err := d.conn.PointerPosition()
	if errors.Is(err, x11.ErrPointerOffScreen) {
		return geometry.Point{}, domain.UnitsPhysical, fmt.Errorf("%w: %v", ErrOffScreen, err)
	}
	return p, domain.UnitsPhysical, err
}

// Close closes the X connection
func (d *x11Device) Close() error {
	return d.conn.Close()
}
