package grid

import (
	"bytes"
	"fmt"
)

// Parse reads newline separated rows of bytes into a grid; see ParseBytes.
func Parse(text string) (*Grid[byte], error) {
	return ParseBytes([]byte(text))
}

// ParseBytes reads newline separated rows of bytes into a grid. A trailing
// carriage return on each row is dropped, as are empty rows. The first row
// sets the width; every other row must match it, and there must be at least
// one row, otherwise an ErrMalformed error is returned.
func ParseBytes(text []byte) (*Grid[byte], error) {
	var (
		g    Grid[byte]
		line int
	)
	for len(text) > 0 {
		var row []byte
		row, text, _ = bytes.Cut(text, []byte{'\n'})
		line++
		row = bytes.TrimSuffix(row, []byte{'\r'})
		if len(row) == 0 {
			continue
		}
		if g.height == 0 {
			g.width = len(row)
			// Cells never outnumber the remaining input bytes.
			g.cells = make([]byte, 0, len(row)+len(text))
		} else if len(row) != g.width {
			return nil, &Error{
				Op:   "parse",
				Line: line,
				Msg:  fmt.Sprintf("row has %d bytes, expected %d", len(row), g.width),
				Err:  ErrMalformed,
			}
		}
		g.cells = append(g.cells, row...)
		g.height++
	}
	if g.height == 0 {
		return nil, &Error{Op: "parse", Msg: "no rows", Err: ErrMalformed}
	}
	return &g, nil
}
