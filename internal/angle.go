package internal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	FullTurnRadians = 2 * math.Pi
	FullTurnDegrees = 360.0
)

// Wrap an angle into [0, 2π). Remainder keeps the sign of the input, so
// negative results get a full turn added. A tiny negative remainder can round
// back up to exactly 2π, which is folded to zero to keep the range half open.
func NormalizeRadians(v float64) float64 {
	return normalize(v, FullTurnRadians)
}

// Wrap an angle into [0, 360).
func NormalizeDegrees(v float64) float64 {
	return normalize(v, FullTurnDegrees)
}

func normalize(v, fullTurn float64) float64 {
	wrapped := math.Mod(v, fullTurn)
	if wrapped < 0 {
		wrapped += fullTurn
	}
	if wrapped >= fullTurn {
		wrapped = 0
	}
	return wrapped
}

func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Angle of the vector pointing from `from` to `to`. Swapping the arguments
// gives the opposite direction, so this is not commutative.
func AngleBetween(from, to Vector2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

func AngleBetweenDegrees(from, to Vector2) float64 {
	return ToDegrees(AngleBetween(from, to))
}

// Convert to degrees and take the absolute value of the remainder. Note that
// this folds -90° to 90°, not 270°. Use NormalizeDegrees(ToDegrees(r)) when
// direction matters.
func ToDegreesAbs(radians float64) float64 {
	return math.Abs(math.Mod(ToDegrees(radians), FullTurnDegrees))
}

// Move a point `distance` units along `angle`. A negative distance moves the
// opposite way, which segment transforms rely on.
func MoveInDirection(point Vector2, angle, distance float64) Vector2 {
	return r2.Add(point, V(distance*math.Cos(angle), distance*math.Sin(angle)))
}

// Rotate a point about a pivot. The point is taken to be its position at
// rotation zero.
func RotateAround(pivot Vector2, angle float64, point Vector2) Vector2 {
	sin, cos := math.Sincos(angle)
	relative := r2.Sub(point, pivot)
	rotated := V(
		relative.X*cos-relative.Y*sin,
		relative.X*sin+relative.Y*cos,
	)
	return r2.Add(rotated, pivot)
}

// Find the candidate closest to the reference point. Ties go to the earliest
// candidate. Panics on an empty list.
func ClosestOf(reference Vector2, candidates []Vector2) Vector2 {
	if len(candidates) == 0 {
		fatalf("cannot find closest of zero candidates")
	}
	closest := candidates[0]
	closestDistance := Distance(closest, reference)
	for _, candidate := range candidates[1:] {
		distance := Distance(candidate, reference)
		if closestDistance > distance {
			closest = candidate
			closestDistance = distance
		}
	}
	return closest
}
