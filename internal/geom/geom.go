// Package geom provides the integer 2D primitives used for hit testing and
// drop-zone collision checks. Coordinates are terminal cells, origin top-left.
package geom

import "fmt"

// Point is a 2D position in cell coordinates.
type Point struct {
	X int
	Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair in cells.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned rectangle. The right and bottom edges are exclusive,
// so a Rect at (0,0) with size 2x2 covers cells (0,0) through (1,1).
type Rect struct {
	X int
	Y int
	W int
	H int
}

// RectAt builds a rect from a top-left point and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the midpoint, rounded toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ContainsPoint reports whether p falls inside r.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o overlap by at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// WithCenter returns a copy of r repositioned so its center lands on c,
// keeping width and height.
func (r Rect) WithCenter(c Point) Rect {
	return Rect{X: c.X - r.W/2, Y: c.Y - r.H/2, W: r.W, H: r.H}
}

// Inset returns r shrunk by dx cells on the left/right and dy on the
// top/bottom. Negative values grow the rect.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}
