//go:build windows

package pointer

import (
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/lxn/win"
	"go.uber.org/zap"
)

type winDevice struct{}

// Open returns a device backed by GetCursorPos
func Open(logger *zap.Logger) (Device, error) {
	return winDevice{}, nil
}

// Position returns the cursor position in screen coordinates
func (winDevice) Position() (geometry.Point, domain.Units, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return geometry.Point{}, domain.UnitsPhysical, ErrOffScreen
	}
	return geometry.Point{X: int(pt.X), Y: int(pt.Y)}, domain.UnitsPhysical, nil
}

func (winDevice) Close() error { return nil }
