package internal

import (
	"fmt"
	"image"
	"iter"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/shapes/internal/dbg"
)

// The shapes this package can build. They differ only in how their corners
// are generated; once built, every shape answers the same queries.
type ShapeKind int

const (
	AxisBox ShapeKind = iota
	Polygon
	Ellipse
)

func (k ShapeKind) String() string {
	switch k {
	case AxisBox:
		return "AxisBox"
	case Polygon:
		return "Polygon"
	case Ellipse:
		return "Ellipse"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// A closed polygon. Corners are kept in the order they were generated, and
// edge i runs from corner i to corner i+1, with the last edge closing back to
// the first corner. Containment relies on that winding, so it is never
// re-sorted.
//
// Shapes are immutable after construction. The accessors hand out copies, so
// a Shape can be shared freely between goroutines.
type Shape struct {
	kind          ShapeKind
	corners       []Vector2
	edges         []Segment
	rotation      float64
	rotationPoint Vector2
	bounds        Bounds

	// Only set for boxes built from an integer rectangle
	rect    image.Rectangle
	hasRect bool
}

// Axis aligned extent of a shape's corners. Y grows downward, so Top is the
// smallest y.
type Bounds struct {
	Top, Bottom, Left, Right float64
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// Grow the bounds to cover another set of bounds.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Top:    math.Min(b.Top, other.Top),
		Bottom: math.Max(b.Bottom, other.Bottom),
		Left:   math.Min(b.Left, other.Left),
		Right:  math.Max(b.Right, other.Right),
	}
}

// Wrap a finished corner list. Edges and bounds are derived here and only
// here; the corner slice is owned by the shape from now on.
func newShape(kind ShapeKind, corners []Vector2, rotation float64, rotationPoint Vector2) *Shape {
	return &Shape{
		kind:          kind,
		corners:       corners,
		edges:         edgesOf(corners),
		rotation:      rotation,
		rotationPoint: rotationPoint,
		bounds:        boundsOf(corners),
	}
}

func edgesOf(corners []Vector2) []Segment {
	edges := make([]Segment, len(corners))
	for i, corner := range corners {
		next := corners[CircularIndex(i+1, len(corners))]
		edges[i] = NewSegment(corner, next)
	}
	return edges
}

func boundsOf(corners []Vector2) Bounds {
	if len(corners) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Top:    math.Inf(1),
		Bottom: math.Inf(-1),
		Left:   math.Inf(1),
		Right:  math.Inf(-1),
	}
	for _, c := range corners {
		b.Top = math.Min(b.Top, c.Y)
		b.Bottom = math.Max(b.Bottom, c.Y)
		b.Left = math.Min(b.Left, c.X)
		b.Right = math.Max(b.Right, c.X)
	}
	return b
}

// Give the modular index for a circular buffer of length n. Unlike the raw
// modulo operator, it never returns a negative value.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *Shape) Kind() ShapeKind        { return s.kind }
func (s *Shape) Rotation() float64      { return s.rotation }
func (s *Shape) RotationPoint() Vector2 { return s.rotationPoint }
func (s *Shape) BoundingBox() Bounds    { return s.bounds }
func (s *Shape) Top() float64           { return s.bounds.Top }
func (s *Shape) Bottom() float64        { return s.bounds.Bottom }
func (s *Shape) Left() float64          { return s.bounds.Left }
func (s *Shape) Right() float64         { return s.bounds.Right }
func (s *Shape) CornerCount() int       { return len(s.corners) }
func (s *Shape) Corner(i int) Vector2   { return s.corners[i] }
func (s *Shape) Edge(i int) Segment     { return s.edges[i] }
func (s *Shape) Corners() []Vector2     { return append([]Vector2(nil), s.corners...) }
func (s *Shape) Edges() []Segment       { return append([]Segment(nil), s.edges...) }

// The unrotated integer rectangle of a box. The boolean is false for every
// other shape.
func (s *Shape) Rect() (image.Rectangle, bool) {
	return s.rect, s.hasRect
}

type XDirection int

const (
	Left XDirection = iota
	Right
	SameX
)

func (d XDirection) String() string {
	return [...]string{"Left", "Right", "SameX"}[d]
}

type YDirection int

const (
	Above YDirection = iota
	Below
	SameY
)

func (d YDirection) String() string {
	return [...]string{"Above", "Below", "SameY"}[d]
}

// Which side of the other shape this one is on, comparing rotation points
// only.
func (s *Shape) RelativeHorizontalDirection(other *Shape) XDirection {
	switch {
	case s.rotationPoint.X > other.rotationPoint.X:
		return Right
	case s.rotationPoint.X < other.rotationPoint.X:
		return Left
	}
	return SameX
}

// Whether this shape is above or below the other, comparing rotation points
// only. Y grows downward.
func (s *Shape) RelativeVerticalDirection(other *Shape) YDirection {
	switch {
	case s.rotationPoint.Y > other.rotationPoint.Y:
		return Below
	case s.rotationPoint.Y < other.rotationPoint.Y:
		return Above
	}
	return SameY
}

// Even-odd point in polygon. Cast a ray toward +x and flip for every edge it
// crosses. Points exactly on an edge land on whichever side the arithmetic
// puts them.
func (s *Shape) ContainsPoint(p Vector2) bool {
	contained := false
	n := len(s.corners)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		c1 := s.corners[i]
		c2 := s.corners[j]
		if (c1.Y > p.Y) != (c2.Y > p.Y) &&
			p.X < (c2.X-c1.X)*(p.Y-c1.Y)/(c2.Y-c1.Y)+c1.X {
			contained = !contained
		}
	}
	return contained
}

// True if every corner of other is inside this shape.
func (s *Shape) ContainsShape(other *Shape) bool {
	for _, corner := range other.corners {
		if !s.ContainsPoint(corner) {
			return false
		}
	}
	return true
}

// True if any corner of other is inside this shape. This is a corner test
// only: two shapes crossing like a plus sign, with no corner inside the other,
// do not intersect by this definition. Use IntersectionPoints when edge
// crossings matter.
func (s *Shape) Intersects(other *Shape) bool {
	for _, corner := range other.corners {
		if s.ContainsPoint(corner) {
			return true
		}
	}
	return false
}

// Intersects against an unrotated box covering rect.
func (s *Shape) IntersectsRect(rect image.Rectangle) bool {
	return s.Intersects(NewAxisBoxFromRect(rect, 0))
}

// Every point where an edge of this shape crosses an edge of other. Own edges
// are the outer loop and other's edges the inner loop. The sequence can be
// iterated again; it recomputes from the immutable shapes each time.
func (s *Shape) IntersectionPoints(other *Shape) iter.Seq[Vector2] {
	return func(yield func(Vector2) bool) {
		for _, edge := range s.edges {
			for _, otherEdge := range other.edges {
				point, ok := edge.Intersects(otherEdge)
				if !ok {
					continue
				}
				if !yield(point) {
					return
				}
			}
		}
	}
}

// The first intersection point, in IntersectionPoints order, that satisfies
// accept. A nil accept takes the first point found.
func (s *Shape) FirstIntersectionPoint(other *Shape, accept func(Vector2) bool) (Vector2, bool) {
	for point := range s.IntersectionPoints(other) {
		if accept == nil || accept(point) {
			return point, true
		}
	}
	return Vector2{}, false
}

func (s *Shape) DbgName() string {
	name := dbg.Name(s)
	switch s.kind {
	case AxisBox:
		return aurora.Cyan(name).String()
	case Polygon:
		return aurora.Green(name).String()
	}
	return aurora.Magenta(name).String()
}

func (s *Shape) String() string {
	return fmt.Sprintf("%s %s {%d corners, rotation %g about (%g, %g)}",
		s.kind,
		s.DbgName(),
		len(s.corners),
		s.rotation,
		s.rotationPoint.X,
		s.rotationPoint.Y,
	)
}
