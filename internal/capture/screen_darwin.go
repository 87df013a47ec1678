//go:build darwin

package capture

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

static double displayScale(int index) {
	CGDirectDisplayID ids[32];
	uint32_t count = 0;
	if (CGGetActiveDisplayList(32, ids, &count) != kCGErrorSuccess) {
		return 0;
	}
	if (index < 0 || (uint32_t)index >= count) {
		return 0;
	}
	CGDisplayModeRef mode = CGDisplayCopyDisplayMode(ids[index]);
	if (mode == NULL) {
		return 0;
	}
	size_t points = CGDisplayModeGetWidth(mode);
	size_t pixels = CGDisplayModeGetPixelWidth(mode);
	CGDisplayModeRelease(mode);
	if (points == 0) {
		return 0;
	}
	return (double)pixels / (double)points;
}
*/
import "C"

import "github.com/genricoloni/snowcap/internal/domain"

// CoreGraphics reports display bounds in points
const screenUnits = domain.UnitsLogical

// screenScale returns the backing scale of the display at a kbinani index,
// or 0 when CoreGraphics cannot describe it. kbinani indexes the same
// active display list.
func screenScale(index int) float64 {
	return float64(C.displayScale(C.int(index)))
}
