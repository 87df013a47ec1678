//go:build linux

package x11

import (
	"fmt"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

// Displays lists one display per connected RandR output driving a CRTC.
// The display ID is the CRTC id, which is what the stream backend resolves.
func (c *Conn) Displays() ([]domain.Display, error) {
	res, err := randr.GetScreenResourcesCurrent(c.xc, c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query screen resources: %w", err)
	}

	seen := make(map[randr.Crtc]bool, len(res.Crtcs))
	displays := make([]domain.Display, 0, len(res.Outputs))

	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(c.xc, output, res.ConfigTimestamp).Reply()
		if err != nil {
			c.logger.Warn("Failed to query output, skipping",
				zap.Uint32("output", uint32(output)),
				zap.Error(err))
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		// Mirrored outputs share a CRTC and show the same pixels
		if seen[info.Crtc] {
			continue
		}
		seen[info.Crtc] = true

		displays = append(displays, &crtcDisplay{
			conn:      c,
			crtc:      info.Crtc,
			name:      string(info.Name),
			timestamp: res.ConfigTimestamp,
		})
	}

	c.logger.Debug("RandR displays detected", zap.Int("count", len(displays)))
	return displays, nil
}

// crtcDisplay is a RandR CRTC and the name of the output it drives
type crtcDisplay struct {
	conn      *Conn
	crtc      randr.Crtc
	name      string
	timestamp xproto.Timestamp
}

func (d *crtcDisplay) ID() (uint32, error) {
	return uint32(d.crtc), nil
}

func (d *crtcDisplay) Name() string {
	return d.name
}

// Geometry queries the CRTC live; X11 reports physical pixels with no per-display scale
func (d *crtcDisplay) Geometry() (domain.DisplayGeometry, error) {
	info, err := randr.GetCrtcInfo(d.conn.xc, d.crtc, d.timestamp).Reply()
	if err != nil {
		return domain.DisplayGeometry{}, fmt.Errorf("failed to query crtc %d: %w", d.crtc, err)
	}
	return domain.DisplayGeometry{
		X:           int(info.X),
		Y:           int(info.Y),
		Width:       int(info.Width),
		Height:      int(info.Height),
		ScaleFactor: 1,
		Units:       domain.UnitsPhysical,
	}, nil
}

// DisplayBounds returns the current root window rectangle of CRTC id
func (c *Conn) DisplayBounds(id uint32) (geometry.Rect, error) {
	info, err := randr.GetCrtcInfo(c.xc, randr.Crtc(id), xproto.TimeCurrentTime).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to query crtc %d: %w", id, err)
	}
	if info.Width == 0 || info.Height == 0 {
		return geometry.Rect{}, fmt.Errorf("crtc %d is disabled", id)
	}
	return geometry.New(int(info.X), int(info.Y), int(info.Width), int(info.Height)), nil
}
