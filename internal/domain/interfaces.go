package domain

// Display is a handle to one physical screen as reported by the platform.
// Implementations may be remote or flaky, so every query can fail.
type Display interface {
	// ID returns the native display identifier used by capture backends
	ID() (uint32, error)

	// Name returns the human readable display name (may be empty)
	Name() string

	// Geometry returns the display position, size and scale factor
	// Units tells the caller whether the values are physical or logical pixels
	Geometry() (DisplayGeometry, error)
}

// DisplaySource enumerates the displays attached to the system
//
//go:generate mockgen -destination=mocks/display_source_mock.go -package=mocks github.com/genricoloni/snowcap/internal/domain DisplaySource
type DisplaySource interface {
	// Displays returns the currently attached displays in platform order
	Displays() ([]Display, error)
}

// WindowHandle identifies an application window that should be left out of a capture
type WindowHandle interface {
	// NativeID returns the platform window identifier
	NativeID() (uint32, error)
}

// Config defines the interface for application configuration
type Config interface {
	// GetOutputDir returns the directory captures are written to by default
	GetOutputDir() string

	// GetFormat returns the default image format extension (e.g., "png")
	GetFormat() string

	// GetPlaceholderDisplays returns display names that never produce real pixels
	GetPlaceholderDisplays() []string

	// GetAppID returns the application id used for permission lookups
	GetAppID() string

	// GetWorkers returns the fan-out limit for parallel capture
	GetWorkers() int

	// GetPermission returns the permission gate mode ("auto", "portal" or "none")
	GetPermission() string
}
