package x11

import (
	"errors"
	"fmt"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/geometry"
	"go.uber.org/zap"
)

var errSessionState = errors.New("invalid session state")

// Screen is the part of an X connection a capture session needs
type Screen interface {
	// DisplayBounds returns the root window rectangle of a display id
	DisplayBounds(id uint32) (geometry.Rect, error)

	// Grab returns 32bpp pixels of area (root coordinates) and the reported depth
	Grab(area geometry.Rect, exclude []uint32) ([]byte, byte, error)
}

// PermissionGate decides whether the desktop allows screen capture
type PermissionGate interface {
	// Granted reports the current decision without prompting
	Granted() bool

	// Request asks for access without waiting for the answer
	Request() bool
}

// Backend is a capture.StreamBackend over an X screen
type Backend struct {
	logger *zap.Logger
	screen Screen
	gate   PermissionGate
}

// NewBackend creates a stream backend. A nil gate always grants access.
func NewBackend(logger *zap.Logger, screen Screen, gate PermissionGate) *Backend {
	return &Backend{logger: logger, screen: screen, gate: gate}
}

// HasPermission consults the permission gate
func (b *Backend) HasPermission() bool {
	if b.gate == nil {
		return true
	}
	return b.gate.Granted()
}

// RequestPermission asks the permission gate for access
func (b *Backend) RequestPermission() bool {
	if b.gate == nil {
		return true
	}
	return b.gate.Request()
}

// NewSession resolves the display and turns the display-local area into root coordinates
func (b *Backend) NewSession(opts capture.StreamOptions) (capture.StreamSession, error) {
	if opts.Format != capture.PixelFormatBGRA {
		return nil, fmt.Errorf("%w: only %s frames can be produced, %s requested",
			capture.ErrFrameFormat, capture.PixelFormatBGRA, opts.Format)
	}

	bounds, err := b.screen.DisplayBounds(opts.DisplayID)
	if err != nil {
		return nil, err
	}

	area := opts.Area.Translate(bounds.MinX, bounds.MinY).Clip(bounds)
	if area.Area() == 0 {
		return nil, fmt.Errorf("area %v lies outside display %d", opts.Area, opts.DisplayID)
	}

	if opts.ShowCursor {
		b.logger.Debug("Cursor drawing is not supported, frame will not contain it")
	}

	return &session{
		logger:  b.logger,
		screen:  b.screen,
		area:    area,
		exclude: append([]uint32(nil), opts.ExcludedWindows...),
	}, nil
}

// session grabs from the screen on demand; X has no push based frame delivery
type session struct {
	logger  *zap.Logger
	screen  Screen
	area    geometry.Rect
	exclude []uint32

	started bool
	stopped bool
}

func (s *session) Start() error {
	if s.started {
		return fmt.Errorf("%w: session already started", errSessionState)
	}
	s.started = true
	return nil
}

func (s *session) NextFrame() (capture.StreamFrame, error) {
	if !s.started || s.stopped {
		return capture.StreamFrame{}, fmt.Errorf("%w: session is not running", errSessionState)
	}

	data, depth, err := s.screen.Grab(s.area, s.exclude)
	if err != nil {
		return capture.StreamFrame{}, err
	}

	frame := capture.StreamFrame{
		Format: formatForDepth(depth),
		Width:  s.area.Width(),
		Height: s.area.Height(),
		Data:   data,
	}
	if frame.Format == capture.PixelFormatBGRA {
		makeOpaque(frame.Data)
	}

	s.logger.Debug("Frame grabbed",
		zap.Stringer("area", s.area),
		zap.Uint8("depth", depth),
		zap.Int("excluded", len(s.exclude)))

	return frame, nil
}

func (s *session) Stop() error {
	if !s.started {
		return fmt.Errorf("%w: session was never started", errSessionState)
	}
	s.stopped = true
	return nil
}
