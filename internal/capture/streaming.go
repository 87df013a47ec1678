package capture

import (
	"context"
	"fmt"
	"image"

	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/genricoloni/snowcap/internal/monitor"
	"go.uber.org/zap"
)

// DefaultPlaceholderDisplay is the virtual display that never yields real pixels
const DefaultPlaceholderDisplay = "DeskPad Display"

// PixelFormat names the channel layout of a stream frame
type PixelFormat string

const (
	// PixelFormatBGRA is 8-bit blue, green, red, alpha
	PixelFormatBGRA PixelFormat = "BGRA"
	// PixelFormatUnknown is reported for layouts the backend cannot describe
	PixelFormatUnknown PixelFormat = "unknown"
)

// StreamOptions configures a single capture session
type StreamOptions struct {
	// FPS is the session frame rate; one-shot capture always asks for 1
	FPS int
	// DisplayID is the native display identifier
	DisplayID uint32
	// Area is the region to stream, in display-local coordinates
	Area geometry.Rect
	// ExcludedWindows lists native window ids left out of the frame
	ExcludedWindows []uint32
	// ShowCursor draws the pointer into the frame
	ShowCursor bool
	// Format is the requested pixel layout
	Format PixelFormat
}

// StreamFrame is one frame delivered by a session.
// Data is tightly packed: len(Data) == Width*Height*4 for 32-bit formats.
type StreamFrame struct {
	Format PixelFormat
	Width  int
	Height int
	Data   []byte
}

// StreamBackend is a permission-gated, session based capture API
//
//go:generate mockgen -destination=mocks/stream_mock.go -package=mocks github.com/genricoloni/snowcap/internal/capture StreamBackend,StreamSession
type StreamBackend interface {
	// HasPermission reports whether capture is currently allowed
	HasPermission() bool

	// RequestPermission asks the platform for capture rights.
	// It must not block waiting for the user.
	RequestPermission() bool

	// NewSession builds a session for the given options
	NewSession(opts StreamOptions) (StreamSession, error)
}

// StreamSession is a started-once, single use capture session
type StreamSession interface {
	// Start begins delivering frames
	Start() error

	// NextFrame blocks until a frame is available
	NextFrame() (StreamFrame, error)

	// Stop releases the session
	Stop() error
}

// Streaming captures monitors through a StreamBackend, one short session per monitor.
type Streaming struct {
	logger       *zap.Logger
	backend      StreamBackend
	placeholders map[string]struct{}
}

// NewStreaming creates a streaming capturer. Displays named in placeholders
// produce the sentinel frame; an empty list falls back to DefaultPlaceholderDisplay.
func NewStreaming(logger *zap.Logger, backend StreamBackend, placeholders []string) *Streaming {
	if len(placeholders) == 0 {
		placeholders = []string{DefaultPlaceholderDisplay}
	}
	set := make(map[string]struct{}, len(placeholders))
	for _, name := range placeholders {
		set[name] = struct{}{}
	}
	return &Streaming{logger: logger, backend: backend, placeholders: set}
}

// Capture pulls exactly one frame of mon, restricted to crop (monitor-local) when given
func (s *Streaming) Capture(ctx context.Context, mon *monitor.Descriptor, crop *geometry.Rect, exclude domain.WindowHandle) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Permission gate, never wait for the user
	if !s.backend.HasPermission() {
		requested := s.backend.RequestPermission()
		s.logger.Warn("Screen capture permission missing, restart required after granting",
			zap.Bool("requested", requested))
		return nil, fmt.Errorf("%w: grant access and restart the application", ErrPermissionDenied)
	}

	// 2. Placeholder displays
	if _, ok := s.placeholders[mon.Name()]; ok {
		s.logger.Debug("Placeholder display, returning sentinel frame",
			zap.String("monitor", mon.Name()))
		return NewSentinel(), nil
	}

	// 3. Resolve native identifiers
	opts, err := s.options(mon, crop, exclude)
	if err != nil {
		return nil, err
	}

	// 4. One frame session
	frame, err := s.pullFrame(opts)
	if err != nil {
		return nil, fmt.Errorf("stream capture of %v failed: %w", mon.Rect(), err)
	}

	return frameToRGBA(frame)
}

// PermissionGranted reports the backend permission state without requesting it
func (s *Streaming) PermissionGranted() bool {
	return s.backend.HasPermission()
}

// RequestPermission forwards a permission request to the backend
func (s *Streaming) RequestPermission() bool {
	return s.backend.RequestPermission()
}

func (s *Streaming) options(mon *monitor.Descriptor, crop *geometry.Rect, exclude domain.WindowHandle) (StreamOptions, error) {
	id, err := mon.Display().ID()
	if err != nil {
		return StreamOptions{}, fmt.Errorf("failed to resolve display id of %v: %w", mon.Rect(), err)
	}

	area := geometry.New(0, 0, mon.Rect().Width(), mon.Rect().Height())
	if crop != nil {
		area = *crop
	}

	opts := StreamOptions{
		FPS:        1,
		DisplayID:  id,
		Area:       area,
		ShowCursor: false,
		Format:     PixelFormatBGRA,
	}

	if exclude != nil {
		wid, err := exclude.NativeID()
		if err != nil {
			return StreamOptions{}, fmt.Errorf("failed to resolve excluded window: %w", err)
		}
		opts.ExcludedWindows = []uint32{wid}
	}

	return opts, nil
}

func (s *Streaming) pullFrame(opts StreamOptions) (StreamFrame, error) {
	session, err := s.backend.NewSession(opts)
	if err != nil {
		return StreamFrame{}, fmt.Errorf("failed to build session: %w", err)
	}

	if err := session.Start(); err != nil {
		return StreamFrame{}, fmt.Errorf("failed to start session: %w", err)
	}
	defer func() {
		if err := session.Stop(); err != nil {
			s.logger.Warn("Failed to stop capture session", zap.Error(err))
		}
	}()

	frame, err := session.NextFrame()
	if err != nil {
		return StreamFrame{}, fmt.Errorf("failed to read frame: %w", err)
	}
	return frame, nil
}
