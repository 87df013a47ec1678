// Package domaintest provides in-memory displays and windows for tests
// that cannot touch real screens.
package domaintest

import (
	"fmt"

	"github.com/genricoloni/snowcap/internal/domain"
)

// Display is a scriptable domain.Display.
type Display struct {
	DisplayID   uint32
	DisplayName string
	Geo         domain.DisplayGeometry
	// IDErr and GeoErr make the matching query fail
	IDErr  error
	GeoErr error
}

// NewDisplay returns a physical, scale 1 display with the given geometry.
func NewDisplay(id uint32, x, y, w, h int) *Display {
	return &Display{
		DisplayID:   id,
		DisplayName: fmt.Sprintf("display-%d", id),
		Geo: domain.DisplayGeometry{
			X: x, Y: y, Width: w, Height: h,
			ScaleFactor: 1,
			Units:       domain.UnitsPhysical,
		},
	}
}

// ID returns DisplayID or IDErr
func (d *Display) ID() (uint32, error) {
	if d.IDErr != nil {
		return 0, d.IDErr
	}
	return d.DisplayID, nil
}

// Name returns DisplayName
func (d *Display) Name() string {
	return d.DisplayName
}

// Geometry returns Geo or GeoErr
func (d *Display) Geometry() (domain.DisplayGeometry, error) {
	if d.GeoErr != nil {
		return domain.DisplayGeometry{}, d.GeoErr
	}
	return d.Geo, nil
}

// Source is a fixed domain.DisplaySource.
type Source struct {
	List []domain.Display
	Err  error
}

// NewSource wraps displays into a Source.
func NewSource(displays ...*Display) *Source {
	list := make([]domain.Display, len(displays))
	for i, d := range displays {
		list[i] = d
	}
	return &Source{List: list}
}

// Displays returns List or Err
func (s *Source) Displays() ([]domain.Display, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.List, nil
}

// Window is a domain.WindowHandle whose lookup can be made to fail.
type Window struct {
	ID  uint32
	Err error
}

// NativeID returns ID or Err
func (w *Window) NativeID() (uint32, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	return w.ID, nil
}
