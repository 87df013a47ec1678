//go:build linux

// Package x11 implements display enumeration, frame grabbing and pointer
// queries on top of the X11 protocol.
package x11

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/composite"
	"github.com/jezek/xgb/randr"
	xshm "github.com/jezek/xgb/shm"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

// Conn is a connection to an X server with the extensions snowcap relies on.
// xgb serializes requests internally, so a Conn may be shared by goroutines.
type Conn struct {
	logger    *zap.Logger
	xc        *xgb.Conn
	root      xproto.Window
	shm       bool
	composite bool

	closeOnce sync.Once
}

// Open connects to display (empty means $DISPLAY). RandR is required;
// MIT-SHM and Composite are optional and only speed up or extend grabbing.
func Open(logger *zap.Logger, display string) (*Conn, error) {
	xc, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	if err := randr.Init(xc); err != nil {
		xc.Close()
		return nil, fmt.Errorf("RandR extension unavailable: %w", err)
	}

	c := &Conn{
		logger: logger,
		xc:     xc,
		root:   xproto.Setup(xc).DefaultScreen(xc).Root,
	}

	if err := xshm.Init(xc); err != nil {
		logger.Debug("MIT-SHM unavailable, falling back to GetImage", zap.Error(err))
	} else {
		c.shm = true
	}

	if err := composite.Init(xc); err != nil {
		logger.Debug("Composite unavailable, window exclusion disabled", zap.Error(err))
	} else {
		c.composite = true
	}

	logger.Debug("X11 connection established",
		zap.Bool("shm", c.shm),
		zap.Bool("composite", c.composite))

	return c, nil
}

// Close closes the connection; further calls are no-ops
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.xc.Close()
	})
	return nil
}

// CanExclude reports whether window exclusion is supported by the server
func (c *Conn) CanExclude() bool {
	return c.composite
}
