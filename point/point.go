package point

import (
	"cmp"
	"fmt"
)

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Point represents a point in <X,Y> 2-space.
type Point struct{ X, Y int }

// Zero is the origin, the zero value of Point.
var Zero = Point{}

// String renders the point as "(x, y)".
func (pt Point) String() string {
	return fmt.Sprintf("(%d, %d)", pt.X, pt.Y)
}

// Compare orders points lexicographically by X then Y, returning -1, 0, or 1.
func (pt Point) Compare(other Point) int {
	if c := cmp.Compare(pt.X, other.X); c != 0 {
		return c
	}
	return cmp.Compare(pt.Y, other.Y)
}

// Less returns true if this point sorts before the other by (X, Y).
func (pt Point) Less(other Point) bool {
	return pt.Compare(other) < 0
}

// Equal returns true if both this point's X and Y components equal another's.
func (pt Point) Equal(other Point) bool {
	return pt == other
}

// Add adds another point's values to a copy of this point, returning the copy.
func (pt Point) Add(other Point) Point {
	pt.X += other.X
	pt.Y += other.Y
	return pt
}

// Sub subtracts another point's values from a copy of this point, returning
// the copy.
func (pt Point) Sub(other Point) Point {
	pt.X -= other.X
	pt.Y -= other.Y
	return pt
}

// Mul multiplies a copy of this point's values by a constant, returning the
// copy.
func (pt Point) Mul(n int) Point {
	pt.X *= n
	pt.Y *= n
	return pt
}

// Clockwise rotates a copy of this point a quarter turn clockwise about the
// origin (as seen with Y growing downward).
func (pt Point) Clockwise() Point {
	return Point{-pt.Y, pt.X}
}

// CounterClockwise undoes Clockwise.
func (pt Point) CounterClockwise() Point {
	return Point{pt.Y, -pt.X}
}

// Manhattan returns the taxicab distance between two points.
func (pt Point) Manhattan(other Point) int {
	d := pt.Sub(other).Abs()
	return d.X + d.Y
}

// Abs returns a copy of this point with its values non-negative.
func (pt Point) Abs() Point {
	if pt.X < 0 {
		pt.X = -pt.X
	}
	if pt.Y < 0 {
		pt.Y = -pt.Y
	}
	return pt
}

// Neighbors returns this point displaced by each of the given directions, in
// order.
func (pt Point) Neighbors(dirs ...Point) []Point {
	ns := make([]Point, len(dirs))
	for i, d := range dirs {
		ns[i] = pt.Add(d)
	}
	return ns
}
