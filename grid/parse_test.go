package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/borkshop/grid/grid"
	"github.com/borkshop/grid/point"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name   string
		in     string
		width  int
		height int
		cells  string
	}{
		{"single row", "abc", 3, 1, "abc"},
		{"square", "AB\nCD", 2, 2, "ABCD"},
		{"trailing newline", "AB\nCD\n", 2, 2, "ABCD"},
		{"crlf", "AB\r\nCD\r\n", 2, 2, "ABCD"},
		{"blank rows skipped", "\nAB\n\nCD\n\n", 2, 2, "ABCD"},
		{"single cell", "x", 1, 1, "x"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.width, g.Width())
			assert.Equal(t, tc.height, g.Height())
			assert.Equal(t, []byte(tc.cells), g.Values())
		})
	}
}

func TestParse_malformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		line int
		msg  string
	}{
		{"empty", "", 0, "grid parse: malformed input: no rows"},
		{"only newlines", "\n\r\n\n", 0, "grid parse: malformed input: no rows"},
		{"short row", "abc\nab\nabc", 2, "grid parse: malformed input on line 2: row has 2 bytes, expected 3"},
		{"long row", "ab\nab\nabc\n", 3, "grid parse: malformed input on line 3: row has 3 bytes, expected 2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.in)
			assert.Nil(t, g)
			require.ErrorIs(t, err, ErrMalformed)
			assert.EqualError(t, err, tc.msg)
			var ge *Error
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, tc.line, ge.Line)
		})
	}
}

func TestParse_example(t *testing.T) {
	g, err := Parse("AB\nCD")
	require.NoError(t, err)

	p, ok := g.Find('C')
	require.True(t, ok)
	assert.Equal(t, point.Pt(0, 1), p)
	assert.Equal(t, 3, g.Index(point.Pt(1, 1)))

	require.NoError(t, g.Set(point.Pt(1, 0), 'X'))
	assert.Equal(t, "AX\nCD", g.String())
}
