package grid

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Rune returns the single character a cell value renders as: bytes and runes
// as themselves, fmt.Stringers through String, named types whose underlying
// kind is byte or rune (such as "type Cell byte") as the character they hold,
// anything else through fmt.Sprint. Only the first rune of a longer rendering
// is kept, and an empty rendering becomes a space, so that every cell occupies
// one column.
func Rune[T comparable](v T) rune {
	var s string
	switch v := any(v).(type) {
	case byte:
		return rune(v)
	case rune:
		return v
	case fmt.Stringer:
		s = v.String()
	default:
		switch rv := reflect.ValueOf(v); rv.Kind() {
		case reflect.Uint8:
			return rune(rv.Uint())
		case reflect.Int32:
			return rune(rv.Int())
		}
		s = fmt.Sprint(v)
	}
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// LinesFunc returns one string per row, mapping each cell through fn.
func (g *Grid[T]) LinesFunc(fn func(T) rune) []string {
	lines := make([]string, g.height)
	line := make([]rune, g.width)
	for y, i := 0, 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			line[x] = fn(g.cells[i])
			i++
		}
		lines[y] = string(line)
	}
	return lines
}

// Lines returns one string per row using each cell's own text form. Byte
// grids are copied out verbatim, so bytes outside ASCII survive unchanged.
func (g *Grid[T]) Lines() []string {
	if b, ok := any(g.cells).([]byte); ok {
		lines := make([]string, g.height)
		for y := range lines {
			lines[y] = string(b[y*g.width : (y+1)*g.width])
		}
		return lines
	}
	return g.LinesFunc(Rune[T])
}

// Format renders the grid through fn, rows joined by newlines with no
// trailing newline.
func (g *Grid[T]) Format(fn func(T) rune) string {
	return strings.Join(g.LinesFunc(fn), "\n")
}

// String renders the grid like Format using each cell's own text form, so
// that Parse(s).String() reproduces s minus any trailing newline.
func (g *Grid[T]) String() string {
	return strings.Join(g.Lines(), "\n")
}

// WriteTo writes the grid to w, each row terminated by a newline.
func (g *Grid[T]) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, line := range g.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
