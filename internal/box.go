package internal

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Build a rectangle of the given size centered on center, rotated about its
// center. The corners wind X, Y, Z, W:
//
//	X = center - u - v
//	Y = center + u - v
//	Z = center + u + v
//	W = center - u + v
//
// where u is the rotated half width axis and v the half height axis
// perpendicular to it.
//
// Rect reports the unrotated box with its top left corner and size truncated
// to integers.
func NewAxisBox(center, size Vector2, rotation float64) *Shape {
	box := newBox(center, size.X/2, size.Y/2, rotation)
	topLeft := image.Pt(int(center.X-size.X/2), int(center.Y-size.Y/2))
	box.rect = image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(int(size.X), int(size.Y)))}
	box.hasRect = true
	return box
}

// Build a box covering an integer rectangle. The center and half sizes use
// integer division, so odd sizes lose half a unit.
func NewAxisBoxFromRect(rect image.Rectangle, rotation float64) *Shape {
	size := rect.Size()
	center := rect.Min.Add(size.Div(2))
	box := newBox(
		V(float64(center.X), float64(center.Y)),
		float64(size.X/2),
		float64(size.Y/2),
		rotation,
	)
	box.rect = rect
	box.hasRect = true
	return box
}

func newBox(center Vector2, halfWidth, halfHeight, rotation float64) *Shape {
	sin, cos := math.Sincos(rotation)
	axis := V(cos, sin)
	u := r2.Scale(halfWidth, axis)
	v := r2.Scale(halfHeight, V(-axis.Y, axis.X))

	corners := []Vector2{
		r2.Sub(r2.Sub(center, u), v),
		r2.Sub(r2.Add(center, u), v),
		r2.Add(r2.Add(center, u), v),
		r2.Add(r2.Sub(center, u), v),
	}
	return newShape(AxisBox, corners, rotation, center)
}
