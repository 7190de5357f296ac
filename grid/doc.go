/*
Package grid provides a fixed-size 2D array of plain values stored as one
row-major buffer and addressed by point.Point.

The cell at (x, y) lives at offset y*width + x. A grid owns its buffer: every
accessor that hands cells out returns a copy, and dimensions never change
after construction.

Text grids are the common case: Parse turns newline separated rows of bytes
into a *Grid[byte], and String renders one back. A grid is not safe for
concurrent mutation; callers sharing one across goroutines must lock around
writes.
*/
package grid
