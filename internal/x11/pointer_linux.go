//go:build linux

package x11

import (
	"errors"
	"fmt"

	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/jezek/xgb/xproto"
)

// ErrPointerOffScreen is returned when the pointer is on another X screen
var ErrPointerOffScreen = errors.New("pointer is not on the default screen")

// PointerPosition returns the pointer position in root window coordinates
func (c *Conn) PointerPosition() (geometry.Point, error) {
	reply, err := xproto.QueryPointer(c.xc, c.root).Reply()
	if err != nil {
		return geometry.Point{}, fmt.Errorf("failed to query pointer: %w", err)
	}
	if !reply.SameScreen {
		return geometry.Point{}, ErrPointerOffScreen
	}
	return geometry.Point{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}
