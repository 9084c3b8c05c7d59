package internal

import "math"

// Segment intersection works on the infinite lines through each segment, then
// checks that the crossing lies within both segments.
//
// Each line is classified once. Vertical lines have no slope, so they are
// described by their x value alone; every other line is y = slope*x + intercept.
// Horizontal is a classification only: the slope of a nearly horizontal line
// is kept exactly, so a horizontal line still solves like any other.

type lineKind int

const (
	oblique lineKind = iota
	vertical
	horizontal
	// Both endpoints coincide within tolerance. A degenerate line counts as
	// vertical when solving and as horizontal when rejecting parallels.
	degenerate
)

type line struct {
	kind      lineKind
	x         float64 // vertical and degenerate lines only
	slope     float64 // everything else
	intercept float64
}

func classifyLine(x1, y1, x2, y2 float64) line {
	isVertical := math.Abs(x1-x2) < Tolerance
	isHorizontal := math.Abs(y1-y2) < Tolerance
	switch {
	case isVertical && isHorizontal:
		return line{kind: degenerate, x: x1}
	case isVertical:
		return line{kind: vertical, x: x1}
	}
	slope := (y2 - y1) / (x2 - x1)
	l := line{kind: oblique, slope: slope, intercept: y1 - slope*x1}
	if isHorizontal {
		l.kind = horizontal
	}
	return l
}

func (l line) isVertical() bool {
	return l.kind == vertical || l.kind == degenerate
}

func (l line) isHorizontal() bool {
	return l.kind == horizontal || l.kind == degenerate
}

func (l line) at(x float64) float64 {
	return l.slope*x + l.intercept
}

func (l line) passesThrough(x, y float64) bool {
	return math.Abs(y-l.at(x)) < Tolerance
}

// Intersect two segments given as (x1, y1, x2, y2). Parallel segments never
// intersect, even when they overlap.
func IntersectSegments(a, b [4]float64) (Vector2, bool) {
	first := classifyLine(a[0], a[1], a[2], a[3])
	second := classifyLine(b[0], b[1], b[2], b[3])

	if first.isVertical() && second.isVertical() {
		return Vector2{}, false
	}
	if first.isHorizontal() && second.isHorizontal() {
		return Vector2{}, false
	}

	var x, y float64
	switch {
	case first.isVertical():
		x = first.x
		y = second.at(x)
	case second.isVertical():
		x = second.x
		y = first.at(x)
	default:
		// Only identical slopes are parallel. Tolerance is for classifying axes;
		// long shallow lines can differ in slope by less and still cross.
		if first.slope == second.slope {
			return Vector2{}, false
		}
		x = (first.intercept - second.intercept) / (second.slope - first.slope)
		y = second.at(x)
		// Only a point that misses the first line while sitting on the second is
		// rejected. Points on both lines, and on neither, pass through to the
		// range checks below.
		if !first.passesThrough(x, y) && second.passesThrough(x, y) {
			return Vector2{}, false
		}
	}

	point := V(x, y)
	if !isFinite(point) {
		return Vector2{}, false
	}
	if !packedContains(a, point) || !packedContains(b, point) {
		return Vector2{}, false
	}
	return point, true
}

// Inclusive range check on each axis independently.
func packedContains(packed [4]float64, point Vector2) bool {
	return withinRange(point.X, packed[0], packed[2]) && withinRange(point.Y, packed[1], packed[3])
}

func withinRange(v, a, b float64) bool {
	return v >= a && v <= b || v >= b && v <= a
}
