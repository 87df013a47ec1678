// Package platform wires the one capture stack compiled in for the target OS.
package platform

import (
	"github.com/genricoloni/snowcap/internal/compositor"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/pointer"
	"go.uber.org/fx"
)

// Backends is the set of platform services provided to the application graph
type Backends struct {
	fx.Out

	Source   domain.DisplaySource
	Capturer compositor.Capturer
	Pointer  pointer.Opener
}

// Module provides Backends for the current build
var Module = fx.Module("platform",
	fx.Provide(New),
)
