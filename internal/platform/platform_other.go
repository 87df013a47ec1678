//go:build !linux

package platform

import (
	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/pointer"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// New builds the direct capture stack on the OS frame buffer APIs
func New(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config) (Backends, error) {
	logger.Info("Capture backend ready", zap.String("backend", "direct"))

	return Backends{
		Source:   capture.NewScreenSource(logger),
		Capturer: capture.NewDirect(logger, capture.ScreenGrabber{}),
		Pointer:  pointer.Open,
	}, nil
}
