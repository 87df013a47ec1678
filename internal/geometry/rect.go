// Package geometry provides the integer rectangle model shared by every monitor,
// crop region and canvas in the virtual desktop coordinate space.
package geometry

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Point is a position in virtual desktop coordinates.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Rect is an axis-aligned rectangle in virtual desktop physical pixels.
// Width is MaxX-MinX, so max is exclusive of content but inclusive as a bound.
// A rect with min == max on either axis is empty and represents "no intersection".
type Rect struct {
	MinX int `json:"minX" yaml:"minX"`
	MinY int `json:"minY" yaml:"minY"`
	MaxX int `json:"maxX" yaml:"maxX"`
	MaxY int `json:"maxY" yaml:"maxY"`
}

// Zero is the empty rectangle at the origin.
var Zero = Rect{}

// New builds a rect from an origin and a size.
func New(x, y, width, height int) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Width returns MaxX-MinX.
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns MaxY-MinY.
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Area returns the pixel count covered by r, or 0 for empty or inverted rects.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Valid reports whether min <= max on both axes.
func (r Rect) Valid() bool {
	return r.MinX <= r.MaxX && r.MinY <= r.MaxY
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.MinX, Y: r.MinY} }

// Overlaps reports whether the projections of r and o intersect on both axes.
// Touching edges count as overlapping (zero-width overlap).
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX &&
		r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Clip returns the intersection of r and o. Disjoint inputs produce a zero-area rect
// whose min never exceeds its max; callers must check Area before using it.
func (r Rect) Clip(o Rect) Rect {
	c := Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
	if c.MaxX < c.MinX {
		c.MaxX = c.MinX
	}
	if c.MaxY < c.MinY {
		c.MaxY = c.MinY
	}
	return c
}

// Translate shifts r by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Contains reports whether p lies inside r (max exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.MinX, r.MinY, r.MaxX, r.MaxY)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// Parse reads a rect written as "minX,minY,maxX,maxY".
func Parse(s string) (Rect, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("invalid rect %q: want minX,minY,maxX,maxY", s)
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, fmt.Errorf("invalid rect %q: %w", s, err)
		}
		v[i] = n
	}

	r := Rect{MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}
	if !r.Valid() {
		return Rect{}, fmt.Errorf("invalid rect %q: min exceeds max", s)
	}
	return r, nil
}
