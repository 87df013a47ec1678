//go:build linux

package x11

import (
	"fmt"

	"github.com/gen2brain/shm"
	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/jezek/xgb/composite"
	xshm "github.com/jezek/xgb/shm"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

const allPlanes = 0xffffffff

// Grab reads area (absolute root coordinates) with the excluded windows left out.
// Exclusion needs the Composite extension; without it the windows stay visible.
func (c *Conn) Grab(area geometry.Rect, exclude []uint32) ([]byte, byte, error) {
	if len(exclude) > 0 {
		if c.composite {
			return c.grabWithout(area, exclude)
		}
		c.logger.Warn("Composite extension missing, excluded windows will be captured",
			zap.Int("excluded", len(exclude)))
	}
	return c.grab(area)
}

// grab reads area (absolute root coordinates) from the root window.
// It returns tightly packed 32bpp pixels and the reported depth.
func (c *Conn) grab(area geometry.Rect) ([]byte, byte, error) {
	if c.shm {
		data, depth, err := c.grabShm(area)
		if err == nil {
			return data, depth, nil
		}
		c.logger.Debug("MIT-SHM grab failed, retrying with GetImage", zap.Error(err))
	}
	return c.grabImage(xproto.Drawable(c.root), area.MinX, area.MinY, area.Width(), area.Height())
}

// grabImage is a plain GetImage round trip; the pixels travel over the socket
func (c *Conn) grabImage(d xproto.Drawable, x, y, w, h int) ([]byte, byte, error) {
	reply, err := xproto.GetImage(c.xc, xproto.ImageFormatZPixmap, d,
		int16(x), int16(y), uint16(w), uint16(h), allPlanes).Reply()
	if err != nil {
		return nil, 0, fmt.Errorf("GetImage failed: %w", err)
	}
	return reply.Data, reply.Depth, nil
}

// grabShm transfers the pixels through a System V shared memory segment
func (c *Conn) grabShm(area geometry.Rect) ([]byte, byte, error) {
	size := area.Width() * area.Height() * 4

	id, err := shm.Get(shm.IPC_PRIVATE, size, shm.IPC_CREAT|0o600)
	if err != nil {
		return nil, 0, fmt.Errorf("shmget failed: %w", err)
	}
	defer shm.Rm(id)

	data, err := shm.At(id, 0, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("shmat failed: %w", err)
	}
	defer shm.Dt(data)

	seg, err := xshm.NewSegId(c.xc)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to allocate segment id: %w", err)
	}
	if err := xshm.AttachChecked(c.xc, seg, uint32(id), false).Check(); err != nil {
		return nil, 0, fmt.Errorf("failed to attach segment: %w", err)
	}
	defer xshm.Detach(c.xc, seg)

	reply, err := xshm.GetImage(c.xc, xproto.Drawable(c.root),
		int16(area.MinX), int16(area.MinY), uint16(area.Width()), uint16(area.Height()),
		allPlanes, xproto.ImageFormatZPixmap, seg, 0).Reply()
	if err != nil {
		return nil, 0, fmt.Errorf("shm GetImage failed: %w", err)
	}

	out := make([]byte, size)
	copy(out, data)
	return out, reply.Depth, nil
}

// grabWithout repaints area from the off-screen pixmaps of every viewable
// top-level window except the excluded ones, bottom to top. Uncovered pixels
// are left zeroed.
func (c *Conn) grabWithout(area geometry.Rect, exclude []uint32) ([]byte, byte, error) {
	skip := make(map[xproto.Window]bool, len(exclude))
	for _, id := range exclude {
		top, err := c.topLevel(xproto.Window(id))
		if err != nil {
			c.logger.Warn("Failed to resolve excluded window, ignoring",
				zap.Uint32("window", id),
				zap.Error(err))
			continue
		}
		skip[top] = true
	}

	if err := composite.RedirectSubwindowsChecked(c.xc, c.root, composite.RedirectAutomatic).Check(); err != nil {
		return nil, 0, fmt.Errorf("failed to redirect windows: %w", err)
	}
	defer composite.UnredirectSubwindows(c.xc, c.root, composite.RedirectAutomatic)

	tree, err := xproto.QueryTree(c.xc, c.root).Reply()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query window tree: %w", err)
	}

	out := make([]byte, area.Width()*area.Height()*4)

	// Children are returned in stacking order, bottom-most first
	for _, win := range tree.Children {
		if skip[win] {
			continue
		}
		if err := c.paintWindow(out, area, win); err != nil {
			c.logger.Debug("Skipping window",
				zap.Uint32("window", uint32(win)),
				zap.Error(err))
		}
	}

	return out, 24, nil
}

// paintWindow copies the visible part of win into out
func (c *Conn) paintWindow(out []byte, area geometry.Rect, win xproto.Window) error {
	attrs, err := xproto.GetWindowAttributes(c.xc, win).Reply()
	if err != nil {
		return err
	}
	if attrs.MapState != xproto.MapStateViewable {
		return nil
	}

	geo, err := xproto.GetGeometry(c.xc, xproto.Drawable(win)).Reply()
	if err != nil {
		return err
	}
	border := 2 * int(geo.BorderWidth)
	outer := geometry.New(int(geo.X), int(geo.Y), int(geo.Width)+border, int(geo.Height)+border)

	visible := outer.Clip(area)
	if visible.Area() == 0 {
		return nil
	}

	pix, err := xproto.NewPixmapId(c.xc)
	if err != nil {
		return err
	}
	if err := composite.NameWindowPixmapChecked(c.xc, win, pix).Check(); err != nil {
		return fmt.Errorf("failed to name window pixmap: %w", err)
	}
	defer xproto.FreePixmap(c.xc, pix)

	data, depth, err := c.grabImage(xproto.Drawable(pix),
		visible.MinX-outer.MinX, visible.MinY-outer.MinY, visible.Width(), visible.Height())
	if err != nil {
		return err
	}
	if formatForDepth(depth) != capture.PixelFormatBGRA {
		return fmt.Errorf("unsupported window depth %d", depth)
	}

	makeOpaque(data)
	return blit(out, area.Width(), data, visible.Translate(-area.MinX, -area.MinY))
}

// topLevel walks up from win to the ancestor that is a direct child of root,
// which is the window manager frame for reparented clients.
func (c *Conn) topLevel(win xproto.Window) (xproto.Window, error) {
	for {
		tree, err := xproto.QueryTree(c.xc, win).Reply()
		if err != nil {
			return 0, fmt.Errorf("failed to query window 0x%x: %w", uint32(win), err)
		}
		if tree.Parent == c.root || tree.Parent == 0 {
			return win, nil
		}
		win = tree.Parent
	}
}
