//go:build linux

package platform

import (
	"context"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/pointer"
	"github.com/genricoloni/snowcap/internal/portal"
	"github.com/genricoloni/snowcap/internal/x11"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// New opens the X server and builds the streaming capture stack on top of it.
// Screen access is gated by the desktop portal when the permission mode asks for it.
func New(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config) (Backends, error) {
	// 1. X connection shared by enumeration and grabbing
	conn, err := x11.Open(logger, "")
	if err != nil {
		return Backends{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return conn.Close()
		},
	})

	// 2. Permission gate
	gate := newGate(lc, logger, cfg)

	// 3. Stream backend
	backend := x11.NewBackend(logger, conn, gate)

	logger.Info("Capture backend ready",
		zap.String("backend", "x11-stream"),
		zap.Bool("windowExclusion", conn.CanExclude()))

	return Backends{
		Source:   conn,
		Capturer: capture.NewStreaming(logger, backend, cfg.GetPlaceholderDisplays()),
		Pointer:  pointer.Open,
	}, nil
}

// newGate picks the portal gate or the unrestricted one
func newGate(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config) x11.PermissionGate {
	if !portal.UsePortal(cfg.GetPermission()) {
		return portal.Unrestricted{}
	}

	client, err := portal.NewStdDBusClient()
	if err != nil {
		logger.Warn("Session bus unavailable, screen capture is not gated", zap.Error(err))
		return portal.Unrestricted{}
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	gate := portal.NewGate(logger, client, cfg.GetAppID())
	if !gate.Available() {
		logger.Warn("Desktop portal not running, permission checks will fail")
	}
	return gate
}
