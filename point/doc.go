/*
Package point provides integer points in 2-space along with the unit
direction vectors used to walk a grid.

Point is cast-compatible with the standard "image".Point, so callers that
already hold image values may convert in either direction without copying
fields by hand. Y grows downward, matching text and image coordinates: Up is
(0, -1).
*/
package point
