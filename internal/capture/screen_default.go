//go:build !darwin

package capture

import "github.com/genricoloni/snowcap/internal/domain"

const screenUnits = domain.UnitsPhysical

// screenScale is 1 where the frame buffer APIs already report pixels
func screenScale(int) float64 {
	return 1
}
