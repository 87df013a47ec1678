//go:build !darwin

package capture

import (
	"testing"

	"github.com/genricoloni/snowcap/internal/domain"
)

func TestScreenScale_PixelPlatforms(t *testing.T) {
	if screenUnits != domain.UnitsPhysical {
		t.Errorf("expected physical units, got %q", screenUnits)
	}
	for _, i := range []int{0, 1, 7} {
		if got := screenScale(i); got != 1 {
			t.Errorf("display %d: expected scale 1, got %v", i, got)
		}
	}
}
