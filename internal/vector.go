package internal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector2 is the host 2D vector. Points and directions are both plain
// vectors; arithmetic goes through gonum's r2 functions.
type Vector2 = r2.Vec

// Tolerance used to classify lines as vertical or horizontal and to check
// that a solved intersection actually lies on its lines.
const Tolerance = 0.001

// Epsilon for comparing computed floating point results in tests and for
// rounding guards that have nothing to do with line classification.
const Epsilon = 1e-9

func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func Distance(a, b Vector2) float64 {
	return r2.Norm(r2.Sub(b, a))
}

func Midpoint(a, b Vector2) Vector2 {
	return r2.Scale(0.5, r2.Add(a, b))
}

func isFinite(v Vector2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
