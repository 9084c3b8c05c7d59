// Oriented line segments and rotated polygonal shapes for 2D games.
//
// A Shape is an ordered ring of corners with derived edges. Boxes, arbitrary
// polygons and ellipse approximations are all built by rotating a set of
// corners about a pivot, and once built they answer the same queries: point
// containment, shape containment, corner intersection, and enumeration of the
// points where their edges cross.
//
// Coordinates are screen-like: y grows downward.
package shapes

import (
	"image"

	"github.com/osuushi/shapes/internal"
)

type Vector2 = internal.Vector2
type Segment = internal.Segment
type Shape = internal.Shape
type ShapeKind = internal.ShapeKind
type Bounds = internal.Bounds
type XDirection = internal.XDirection
type YDirection = internal.YDirection
type EllipseOption = internal.EllipseOption

const (
	AxisBox = internal.AxisBox
	Polygon = internal.Polygon
	Ellipse = internal.Ellipse

	Left  = internal.Left
	Right = internal.Right
	SameX = internal.SameX
	Above = internal.Above
	Below = internal.Below
	SameY = internal.SameY

	Tolerance                = internal.Tolerance
	SplitGap                 = internal.SplitGap
	DefaultEllipseCornerStep = internal.DefaultEllipseCornerStep
)

func V(x, y float64) Vector2 {
	return internal.V(x, y)
}

func NewSegment(start, end Vector2) Segment {
	return internal.NewSegment(start, end)
}

func VerticalSegment(midpoint Vector2, length float64) Segment {
	return internal.VerticalSegment(midpoint, length)
}

func SegmentFromMidpoint(midpoint Vector2, length, angle float64) Segment {
	return internal.SegmentFromMidpoint(midpoint, length, angle)
}

// Build a rectangle of the given size centered on center and rotated about
// it. Boxes can't fail, so there is no error.
func NewAxisBox(center, size Vector2, rotation float64) *Shape {
	return internal.NewAxisBox(center, size, rotation)
}

func NewAxisBoxFromRect(rect image.Rectangle, rotation float64) *Shape {
	return internal.NewAxisBoxFromRect(rect, rotation)
}

// Build a polygon from at least three corners, rotated about pivot.
func NewPolygon(rotation float64, pivot Vector2, corners ...Vector2) (result *Shape, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.NewPolygon(rotation, pivot, corners...), nil
}

// Approximate an ellipse centered on position. See WithCornerStep and
// WithTruncation for the sampling knobs.
func NewEllipse(position, radii Vector2, rotation float64, opts ...EllipseOption) (result *Shape, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.NewEllipse(position, radii, rotation, opts...), nil
}

func WithCornerStep(degrees int) EllipseOption {
	return internal.WithCornerStep(degrees)
}

func WithTruncation(truncate bool) EllipseOption {
	return internal.WithTruncation(truncate)
}

// Find the candidate closest to reference. It is an error to pass no
// candidates.
func ClosestOf(reference Vector2, candidates []Vector2) (result Vector2, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.ClosestOf(reference, candidates), nil
}

func NormalizeRadians(v float64) float64   { return internal.NormalizeRadians(v) }
func NormalizeDegrees(v float64) float64   { return internal.NormalizeDegrees(v) }
func ToRadians(degrees float64) float64    { return internal.ToRadians(degrees) }
func ToDegrees(radians float64) float64    { return internal.ToDegrees(radians) }
func ToDegreesAbs(radians float64) float64 { return internal.ToDegreesAbs(radians) }

func AngleBetween(from, to Vector2) float64 {
	return internal.AngleBetween(from, to)
}

func AngleBetweenDegrees(from, to Vector2) float64 {
	return internal.AngleBetweenDegrees(from, to)
}

func Distance(a, b Vector2) float64 { return internal.Distance(a, b) }
func Midpoint(a, b Vector2) Vector2 { return internal.Midpoint(a, b) }

func MoveInDirection(point Vector2, angle, distance float64) Vector2 {
	return internal.MoveInDirection(point, angle, distance)
}

func RotateAround(pivot Vector2, angle float64, point Vector2) Vector2 {
	return internal.RotateAround(pivot, angle, point)
}
