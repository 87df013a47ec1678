package capture

import "errors"

var (
	// ErrPermissionDenied implies the platform has not granted screen capture rights.
	// Granting usually only takes effect after the application is restarted.
	ErrPermissionDenied = errors.New("screen capture permission denied")

	// ErrNotSupported implies no capture backend exists for this platform.
	ErrNotSupported = errors.New("screen capture not supported on this platform")

	// ErrFrameFormat implies the backend delivered pixels in an unexpected layout.
	ErrFrameFormat = errors.New("unexpected frame pixel format")

	// ErrFrameSize implies the frame buffer length does not match its dimensions.
	ErrFrameSize = errors.New("frame buffer size mismatch")
)
