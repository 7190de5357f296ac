package bitmap

import (
	"image"
	"math/bits"

	"github.com/borkshop/grid/grid"
	"github.com/borkshop/grid/point"
)

// Bitmap is a compact set of points within a fixed rectangle, one bit per
// cell, rows padded to whole bytes.
type Bitmap struct {
	Bytes  []byte
	Stride int
	Rect   image.Rectangle
}

// New returns a cleared bitmap covering the given rectangle.
func New(r image.Rectangle) *Bitmap {
	w, h := r.Dx(), r.Dy()
	stride := (w + 7) / 8
	count := stride * h
	return &Bitmap{
		Bytes:  make([]byte, count),
		Stride: stride,
		Rect:   r,
	}
}

// FromGrid returns a bitmap over g's bounds with a bit set for every cell
// equal to v.
func FromGrid[T comparable](g *grid.Grid[T], v T) *Bitmap {
	b := New(g.Bounds())
	g.Each(func(p point.Point, c T) bool {
		if c == v {
			b.Set(p, true)
		}
		return true
	})
	return b
}

// Bounds returns the bounds of the bitmap
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// Contains returns true if the point lies within the bitmap bounds.
func (b *Bitmap) Contains(pt point.Point) bool {
	return image.Point(pt).In(b.Rect)
}

// maskIndex returns the bit mask and byte index for the bit at a given point.
func (b *Bitmap) maskIndex(pt point.Point) (byte, int) {
	pt = pt.Sub(point.Point(b.Rect.Min))
	index := pt.Y*b.Stride + pt.X>>3
	return 1 << uint(pt.X&07), index
}

// At returns whether the bit is set at a point; points outside the bounds
// read as unset.
func (b *Bitmap) At(pt point.Point) bool {
	if !b.Contains(pt) {
		return false
	}

	mask, index := b.maskIndex(pt)
	return b.Bytes[index]&mask != 0
}

// Set sets or resets the bit at a point; points outside the bounds are
// ignored.
func (b *Bitmap) Set(pt point.Point, bit bool) {
	if !b.Contains(pt) {
		return
	}

	mask, index := b.maskIndex(pt)
	if bit {
		b.Bytes[index] |= mask
	} else {
		b.Bytes[index] &^= mask
	}
}

// Visit sets the bit at a point, returning true if it was previously unset
// and inside the bounds.
func (b *Bitmap) Visit(pt point.Point) bool {
	if !b.Contains(pt) || b.At(pt) {
		return false
	}
	b.Set(pt, true)
	return true
}

// Count returns the number of set bits.
func (b *Bitmap) Count() int {
	n := 0
	for _, c := range b.Bytes {
		n += bits.OnesCount8(c)
	}
	return n
}

// Clear resets every bit.
func (b *Bitmap) Clear() {
	clear(b.Bytes)
}

// Points returns the set points in row-major order.
func (b *Bitmap) Points() []point.Point {
	var pts []point.Point
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if pt := point.Pt(x, y); b.At(pt) {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}
