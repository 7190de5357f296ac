package bitmap_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/borkshop/grid/bitmap"
	"github.com/borkshop/grid/grid"
	"github.com/borkshop/grid/point"
)

func TestBitmap_setReset(t *testing.T) {
	b := New(image.Rect(0, 0, 10, 3))
	assert.Equal(t, 2, b.Stride)
	assert.Len(t, b.Bytes, 6)

	for _, pt := range []point.Point{point.Pt(0, 0), point.Pt(7, 0), point.Pt(8, 0), point.Pt(9, 2)} {
		assert.False(t, b.At(pt), "%v", pt)
		b.Set(pt, true)
		assert.True(t, b.At(pt), "%v", pt)
	}
	assert.Equal(t, 4, b.Count())
	assert.False(t, b.At(point.Pt(1, 0)))
	assert.False(t, b.At(point.Pt(0, 1)))

	b.Set(point.Pt(7, 0), false)
	assert.False(t, b.At(point.Pt(7, 0)))
	assert.True(t, b.At(point.Pt(8, 0)))
	assert.Equal(t, []point.Point{point.Pt(0, 0), point.Pt(8, 0), point.Pt(9, 2)}, b.Points())

	b.Set(point.Pt(10, 0), true)
	b.Set(point.Pt(-1, 0), true)
	assert.Equal(t, 3, b.Count(), "out of bounds sets are ignored")
	assert.False(t, b.At(point.Pt(10, 0)))

	b.Clear()
	assert.Equal(t, 0, b.Count())
	assert.Empty(t, b.Points())
}

func TestBitmap_offset(t *testing.T) {
	b := New(image.Rect(-4, -2, 4, 2))
	assert.True(t, b.Visit(point.Pt(-4, -2)))
	assert.False(t, b.Visit(point.Pt(-4, -2)))
	assert.True(t, b.Visit(point.Pt(3, 1)))
	assert.False(t, b.Visit(point.Pt(4, 1)))
	assert.Equal(t, []point.Point{point.Pt(-4, -2), point.Pt(3, 1)}, b.Points())
	assert.Equal(t, []byte{1, 0, 0, 0x80}, b.Bytes)
}

func TestBitmap_fromGrid(t *testing.T) {
	g, err := grid.Parse("#..#\n.##.\n#..#")
	require.NoError(t, err)

	walls := FromGrid(g, '#')
	assert.Equal(t, g.Bounds(), walls.Bounds())
	assert.Equal(t, g.Count('#'), walls.Count())
	assert.Equal(t, g.FindAll('#'), walls.Points())
	for i := 0; i < g.Len(); i++ {
		p := g.Point(i)
		c, err := g.Get(p)
		require.NoError(t, err)
		assert.Equal(t, c == '#', walls.At(p), "%v", p)
	}
}
