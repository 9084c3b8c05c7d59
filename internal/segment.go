package internal

import (
	"fmt"
	"image"
	"math"
)

// Distance by which each half of a split stops short of the split point.
// Leaving the gap keeps the two halves from touching when drawn.
const SplitGap = 1.0

// An oriented line segment. Segments are values: every transform returns a new
// segment. The midpoint is cached at construction and always describes the
// same segment as the endpoints, so the fields are private.
type Segment struct {
	start, end, midpoint Vector2
	// Start and end packed as (x1, y1, x2, y2), the form the intersection
	// routine consumes.
	packed [4]float64
}

func NewSegment(start, end Vector2) Segment {
	return newSegmentWithMidpoint(start, end, Midpoint(start, end))
}

// Transforms that move the midpoint to a known position pass it through
// directly instead of re-deriving it from rounded endpoints.
func newSegmentWithMidpoint(start, end, midpoint Vector2) Segment {
	return Segment{
		start:    start,
		end:      end,
		midpoint: midpoint,
		packed:   [4]float64{start.X, start.Y, end.X, end.Y},
	}
}

// Build a segment of the given length centered on midpoint, with the start
// lying along `angle` and the end lying opposite.
func SegmentFromMidpoint(midpoint Vector2, length, angle float64) Segment {
	half := length / 2
	start := MoveInDirection(midpoint, angle, half)
	end := MoveInDirection(midpoint, angle, -half)
	return newSegmentWithMidpoint(start, end, midpoint)
}

// A segment standing at 90 degrees, one of these -> |
func VerticalSegment(midpoint Vector2, length float64) Segment {
	return SegmentFromMidpoint(midpoint, length, math.Pi/2)
}

func (s Segment) Start() Vector2        { return s.start }
func (s Segment) End() Vector2          { return s.end }
func (s Segment) Midpoint() Vector2     { return s.midpoint }
func (s Segment) Packed() [4]float64    { return s.packed }
func (s Segment) Length() float64       { return Distance(s.start, s.end) }
func (s Segment) Angle() float64        { return AngleBetween(s.start, s.end) }
func (s Segment) AngleDegrees() float64 { return ToDegrees(s.Angle()) }

// Move the segment so that its midpoint lands on target.
func (s Segment) MoveTo(target Vector2) Segment {
	angle := AngleBetween(s.midpoint, target)
	distance := Distance(s.midpoint, target)
	return s.Move(angle, distance)
}

// Translate the segment `distance` units along `angle`. The endpoints keep
// their polar offsets from the midpoint, so the segment's length and
// orientation are unchanged.
func (s Segment) Move(angle, distance float64) Segment {
	midToStartAngle := AngleBetween(s.midpoint, s.start)
	midToStartDistance := Distance(s.midpoint, s.start)
	midToEndAngle := AngleBetween(s.midpoint, s.end)
	midToEndDistance := Distance(s.midpoint, s.end)

	newMidpoint := MoveInDirection(s.midpoint, angle, distance)
	newStart := MoveInDirection(newMidpoint, midToStartAngle, midToStartDistance)
	newEnd := MoveInDirection(newMidpoint, midToEndAngle, midToEndDistance)

	return newSegmentWithMidpoint(newStart, newEnd, newMidpoint)
}

// Set the segment's orientation about its midpoint. This is absolute, not
// incremental: the start ends up along `angle` from the midpoint and the end
// opposite it, each at its original distance.
func (s Segment) Rotate(angle float64) Segment {
	midToStartDistance := Distance(s.midpoint, s.start)
	midToEndDistance := Distance(s.midpoint, s.end)

	newStart := MoveInDirection(s.midpoint, angle, midToStartDistance)
	newEnd := MoveInDirection(s.midpoint, angle, -midToEndDistance)

	return newSegmentWithMidpoint(newStart, newEnd, s.midpoint)
}

func (s Segment) Split(splitPoint Vector2) (startToSplit, splitToEnd Segment) {
	return s.SplitWithGap(splitPoint, SplitGap)
}

// Split into a segment from the start toward splitPoint and one from
// splitPoint toward the end. Each half stops `gap` units short of the split
// point.
func (s Segment) SplitWithGap(splitPoint Vector2, gap float64) (startToSplit, splitToEnd Segment) {
	startSide := MoveInDirection(
		s.start,
		AngleBetween(s.start, splitPoint),
		Distance(s.start, splitPoint)-gap,
	)
	endSide := MoveInDirection(
		s.end,
		AngleBetween(s.end, splitPoint),
		Distance(s.end, splitPoint)-gap,
	)
	return NewSegment(s.start, startSide), NewSegment(endSide, s.end)
}

// Find where this segment crosses another. The boolean is false when the
// segments are parallel or their lines cross outside either segment.
func (s Segment) Intersects(other Segment) (Vector2, bool) {
	return IntersectSegments(s.packed, other.packed)
}

// Check if the point lies within the segment's extent on both axes. This is
// a bounding box check; it does not test that the point is on the line.
func (s Segment) Contains(point Vector2) bool {
	return packedContains(s.packed, point)
}

// Twice the signed area of the triangle (start, end, point). Positive means
// the point is clockwise of the segment in a y-down coordinate system.
func (s Segment) SideOf(point Vector2) float64 {
	return (s.end.X-s.start.X)*(point.Y-s.start.Y) - (point.X-s.start.X)*(s.end.Y-s.start.Y)
}

func (s Segment) IsClockwiseOf(point Vector2) bool {
	return s.SideOf(point) > 0
}

func (s Segment) IsCounterClockwiseOf(point Vector2) bool {
	return s.SideOf(point) < 0
}

// The integer rectangle a renderer would stretch to draw this segment
// unrotated: as wide as the segment is long and `thickness` tall, centered on
// the midpoint. Coordinates are truncated toward zero.
func (s Segment) Bounds(thickness int) image.Rectangle {
	size := image.Pt(int(s.Length()), thickness)
	center := image.Pt(int(s.midpoint.X), int(s.midpoint.Y))
	topLeft := center.Sub(size.Div(2))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment (%g, %g) -> (%g, %g)", s.start.X, s.start.Y, s.end.X, s.end.Y)
}
