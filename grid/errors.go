package grid

import (
	"errors"
	"fmt"

	"github.com/borkshop/grid/point"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrMalformed   = errors.New("malformed input")
)

// Error wraps a sentinel error with the operation and location that caused
// it.
type Error struct {
	Op    string
	Point point.Point // set for ErrOutOfBounds
	Line  int         // 1-based; set for ErrMalformed when a line is at fault
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("grid %s: %v", e.Op, e.Err)
	switch {
	case errors.Is(e.Err, ErrOutOfBounds):
		base += fmt.Sprintf(" at %v", e.Point)
	case e.Line > 0:
		base += fmt.Sprintf(" on line %d", e.Line)
	}
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (g *Grid[T]) boundsError(op string, p point.Point) error {
	return &Error{
		Op:    op,
		Point: p,
		Msg:   fmt.Sprintf("size %v", g.Size()),
		Err:   ErrOutOfBounds,
	}
}
