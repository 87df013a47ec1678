//go:build !linux && !windows

package pointer

import (
	"github.com/genricoloni/snowcap/internal/capture"
	"go.uber.org/zap"
)

// Open is unsupported on this platform
func Open(logger *zap.Logger) (Device, error) {
	return nil, capture.ErrNotSupported
}
