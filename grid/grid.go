package grid

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/borkshop/grid/point"
)

// Grid is a fixed-size 2D array of comparable values.
type Grid[T comparable] struct {
	width  int
	height int
	cells  []T
}

// New makes a width by height grid of zero values; it panics if either
// dimension is negative or their product overflows an int.
func New[T comparable](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, height))
	}
	if height > 0 && width > math.MaxInt/height {
		panic(fmt.Sprintf("grid: size %dx%d overflows", width, height))
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// Filled makes a width by height grid with every cell set to fill.
func Filled[T comparable](width, height int, fill T) *Grid[T] {
	g := New[T](width, height)
	g.Fill(fill)
	return g
}

// Map returns a grid of the same size whose cells are fn applied to g's.
func Map[T, U comparable](g *Grid[T], fn func(T) U) *Grid[U] {
	m := New[U](g.width, g.height)
	for i, v := range g.cells {
		m.cells[i] = fn(v)
	}
	return m
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells, Width()*Height().
func (g *Grid[T]) Len() int { return len(g.cells) }

// Size returns the width and height of the grid as a point.
func (g *Grid[T]) Size() point.Point { return point.Pt(g.width, g.height) }

// Bounds returns the half-open rectangle of valid points.
func (g *Grid[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// Contains returns true if p addresses a cell of the grid.
func (g *Grid[T]) Contains(p point.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Index returns the row-major offset of p; only meaningful if Contains(p).
func (g *Grid[T]) Index(p point.Point) int {
	return p.Y*g.width + p.X
}

// Point returns the point at row-major offset i; it is the inverse of Index
// for 0 <= i < Len().
func (g *Grid[T]) Point(i int) point.Point {
	return point.Pt(i%g.width, i/g.width)
}

// Get returns the cell at p, or an ErrOutOfBounds error.
func (g *Grid[T]) Get(p point.Point) (T, error) {
	if !g.Contains(p) {
		var zero T
		return zero, g.boundsError("get", p)
	}
	return g.cells[g.Index(p)], nil
}

// Set stores v at p, or returns an ErrOutOfBounds error.
func (g *Grid[T]) Set(p point.Point, v T) error {
	if !g.Contains(p) {
		return g.boundsError("set", p)
	}
	g.cells[g.Index(p)] = v
	return nil
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= g.height {
		return nil, g.boundsError("row", point.Pt(0, y))
	}
	i := y * g.width
	return slices.Clone(g.cells[i : i+g.width]), nil
}

// Values returns a copy of the row-major cell buffer.
func (g *Grid[T]) Values() []T {
	return slices.Clone(g.cells)
}

// Find returns the first point, in row-major order, whose cell equals v.
func (g *Grid[T]) Find(v T) (point.Point, bool) {
	if i := slices.Index(g.cells, v); i >= 0 {
		return g.Point(i), true
	}
	return point.Zero, false
}

// FindAll returns every point whose cell equals v, in row-major order.
func (g *Grid[T]) FindAll(v T) []point.Point {
	var pts []point.Point
	for i, c := range g.cells {
		if c == v {
			pts = append(pts, g.Point(i))
		}
	}
	return pts
}

// Count returns how many cells equal v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order until fn returns false.
func (g *Grid[T]) Each(fn func(point.Point, T) bool) {
	for i, c := range g.cells {
		if !fn(g.Point(i), c) {
			return
		}
	}
}

// Neighbors returns p displaced by each direction, keeping only points inside
// the grid, in direction order.
func (g *Grid[T]) Neighbors(p point.Point, dirs ...point.Point) []point.Point {
	ns := make([]point.Point, 0, len(dirs))
	for _, d := range dirs {
		if n := p.Add(d); g.Contains(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// CopyFilled returns a new grid of the same size with every cell set to fill.
func (g *Grid[T]) CopyFilled(fill T) *Grid[T] {
	return Filled(g.width, g.height, fill)
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  slices.Clone(g.cells),
	}
}

// Equal returns true if both grids have the same size and cells; a nil grid
// equals only another nil grid.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.width == other.width &&
		g.height == other.height &&
		slices.Equal(g.cells, other.cells)
}
