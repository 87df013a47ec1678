package domain

import "fmt"

// Units describes the coordinate space a platform reports display geometry in
type Units string

const (
	// UnitsPhysical means geometry is already in device pixels
	UnitsPhysical Units = "physical"
	// UnitsLogical means geometry must be multiplied by the scale factor
	UnitsLogical Units = "logical"
)

// DisplayGeometry holds the raw geometry reported for a display
type DisplayGeometry struct {
	// X, Y is the top-left corner in the virtual desktop
	X int
	Y int
	// Width and Height of the display
	Width  int
	Height int
	// ScaleFactor is the ratio of physical to logical pixels
	ScaleFactor float64
	// Units tells whether the fields above are physical or logical
	Units Units
}

// WindowID is a WindowHandle backed by a plain native identifier
type WindowID uint32

// NativeID returns the identifier itself
func (w WindowID) NativeID() (uint32, error) {
	return uint32(w), nil
}

func (w WindowID) String() string {
	return fmt.Sprintf("0x%x", uint32(w))
}
