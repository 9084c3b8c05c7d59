// Package scene loads named shapes and the queries to run against them from
// YAML or SVG, and evaluates those queries.
package scene

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/shapes"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A scene document, as written in YAML:
//
//	shapes:
//	  - name: door
//	    box: {center: [10, 10], size: [4, 6], rotation: 30deg}
//	  - name: wedge
//	    polygon: {rotation: 0.5, pivot: [0, 0], corners: [[0, 0], [4, 0], [4, 4]]}
//	  - name: pond
//	    ellipse: {position: [5, 5], radii: [3, 2], step: 20, truncate: false}
//	queries:
//	  - {op: intersects, a: door, b: pond}
//	  - {op: contains-point, a: pond, point: [5, 5]}
type Document struct {
	Shapes  []ShapeSpec `yaml:"shapes"`
	Queries []QuerySpec `yaml:"queries"`
}

// Exactly one of Box, Polygon and Ellipse must be set.
type ShapeSpec struct {
	Name    string       `yaml:"name"`
	Box     *BoxSpec     `yaml:"box,omitempty"`
	Polygon *PolygonSpec `yaml:"polygon,omitempty"`
	Ellipse *EllipseSpec `yaml:"ellipse,omitempty"`
}

type BoxSpec struct {
	Center   Point `yaml:"center"`
	Size     Point `yaml:"size"`
	Rotation Angle `yaml:"rotation"`
}

type PolygonSpec struct {
	Rotation Angle   `yaml:"rotation"`
	Pivot    Point   `yaml:"pivot"`
	Corners  []Point `yaml:"corners"`
}

type EllipseSpec struct {
	Position Point `yaml:"position"`
	Radii    Point `yaml:"radii"`
	Rotation Angle `yaml:"rotation"`
	// Degrees between corners. Zero means the default.
	Step     int   `yaml:"step,omitempty"`
	Truncate *bool `yaml:"truncate,omitempty"`
}

type QuerySpec struct {
	Op    Op     `yaml:"op"`
	A     string `yaml:"a"`
	B     string `yaml:"b,omitempty"`
	Point *Point `yaml:"point,omitempty"`
}

// A point written as a two element sequence, [x, y].
type Point shapes.Vector2

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var xy []float64
	if err := value.Decode(&xy); err != nil {
		return errors.Wrapf(err, "line %d: invalid point", value.Line)
	}
	if len(xy) != 2 {
		return errors.Errorf("line %d: a point needs 2 coordinates, got %d", value.Line, len(xy))
	}
	*p = Point{X: xy[0], Y: xy[1]}
	return nil
}

func (p Point) Vec() shapes.Vector2 {
	return shapes.Vector2(p)
}

// An angle in radians. In YAML it may be a bare number of radians, or a
// string with a "deg" or "rad" suffix.
type Angle float64

func (a *Angle) UnmarshalYAML(value *yaml.Node) error {
	var radians float64
	if err := value.Decode(&radians); err == nil {
		*a = Angle(radians)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return errors.Wrapf(err, "line %d: invalid angle", value.Line)
	}
	angle, err := ParseAngle(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*a = angle
	return nil
}

func ParseAngle(s string) (Angle, error) {
	s = strings.TrimSpace(s)
	unit := 1.0
	switch {
	case strings.HasSuffix(s, "deg"):
		s = strings.TrimSuffix(s, "deg")
		unit = shapes.ToRadians(1)
	case strings.HasSuffix(s, "rad"):
		s = strings.TrimSuffix(s, "rad")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Errorf("invalid angle %q", s)
	}
	return Angle(v * unit), nil
}

type Op string

const (
	// Does any corner of B lie inside A?
	OpIntersects Op = "intersects"
	// Do all corners of B lie inside A?
	OpContains Op = "contains"
	// Does Point lie inside A?
	OpContainsPoint Op = "contains-point"
	// Every point where the edges of A and B cross
	OpPoints Op = "points"
	// The first such point
	OpFirst Op = "first"
	// Where A's pivot sits relative to B's
	OpDirection Op = "direction"
)

func (op Op) needsB() bool {
	return op != OpContainsPoint
}

type Named struct {
	Name  string
	Shape *shapes.Shape
}

type Query struct {
	Op    Op
	A, B  Named
	Point shapes.Vector2
}

func (q Query) String() string {
	switch q.Op {
	case OpContainsPoint:
		return fmt.Sprintf("%s %s (%g, %g)", q.A.Name, q.Op, q.Point.X, q.Point.Y)
	}
	return fmt.Sprintf("%s %s %s", q.A.Name, q.Op, q.B.Name)
}

// Built shapes in document order, and the queries that refer to them.
type Scene struct {
	Shapes  []Named
	Queries []Query
	byName  map[string]*shapes.Shape
}

func (s *Scene) Shape(name string) (*shapes.Shape, bool) {
	shape, ok := s.byName[name]
	return shape, ok
}

func (s *Scene) All() []*shapes.Shape {
	all := make([]*shapes.Shape, len(s.Shapes))
	for i, named := range s.Shapes {
		all[i] = named.Shape
	}
	return all
}

func (s *Scene) add(name string, shape *shapes.Shape) error {
	if name == "" {
		name = fmt.Sprintf("shape-%d", len(s.Shapes))
	}
	if _, ok := s.byName[name]; ok {
		return errors.Errorf("duplicate shape name %q", name)
	}
	s.byName[name] = shape
	s.Shapes = append(s.Shapes, Named{Name: name, Shape: shape})
	return nil
}

func newScene() *Scene {
	return &Scene{byName: make(map[string]*shapes.Shape)}
}

func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return LoadSVG(f)
	}
	return Parse(f)
}

// Parse a YAML scene document and build its shapes.
func Parse(r io.Reader) (*Scene, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return Build(doc)
}

func Build(doc Document) (*Scene, error) {
	s := newScene()
	for i, spec := range doc.Shapes {
		shape, err := spec.build()
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d (%s)", i, spec.Name)
		}
		if err := s.add(spec.Name, shape); err != nil {
			return nil, err
		}
	}

	for i, spec := range doc.Queries {
		query, err := s.resolve(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "query %d", i)
		}
		s.Queries = append(s.Queries, query)
	}
	return s, nil
}

func (spec ShapeSpec) build() (*shapes.Shape, error) {
	set := 0
	for _, present := range []bool{spec.Box != nil, spec.Polygon != nil, spec.Ellipse != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errors.Errorf("exactly one of box, polygon or ellipse is required, got %d", set)
	}

	switch {
	case spec.Box != nil:
		b := spec.Box
		return shapes.NewAxisBox(b.Center.Vec(), b.Size.Vec(), float64(b.Rotation)), nil
	case spec.Polygon != nil:
		p := spec.Polygon
		corners := make([]shapes.Vector2, len(p.Corners))
		for i, c := range p.Corners {
			corners[i] = c.Vec()
		}
		return shapes.NewPolygon(float64(p.Rotation), p.Pivot.Vec(), corners...)
	}
	e := spec.Ellipse
	var opts []shapes.EllipseOption
	if e.Step != 0 {
		opts = append(opts, shapes.WithCornerStep(e.Step))
	}
	if e.Truncate != nil {
		opts = append(opts, shapes.WithTruncation(*e.Truncate))
	}
	return shapes.NewEllipse(e.Position.Vec(), e.Radii.Vec(), float64(e.Rotation), opts...)
}

func (s *Scene) named(name string) (Named, error) {
	shape, ok := s.byName[name]
	if !ok {
		return Named{}, errors.Errorf("unknown shape %q", name)
	}
	return Named{Name: name, Shape: shape}, nil
}

func (s *Scene) resolve(spec QuerySpec) (Query, error) {
	switch spec.Op {
	case OpIntersects, OpContains, OpContainsPoint, OpPoints, OpFirst, OpDirection:
	default:
		return Query{}, errors.Errorf("unknown op %q", spec.Op)
	}

	query := Query{Op: spec.Op}
	var err error
	if query.A, err = s.named(spec.A); err != nil {
		return Query{}, err
	}
	if spec.Op.needsB() {
		if query.B, err = s.named(spec.B); err != nil {
			return Query{}, err
		}
		return query, nil
	}
	if spec.Point == nil {
		return Query{}, errors.Errorf("%s needs a point", spec.Op)
	}
	query.Point = spec.Point.Vec()
	return query, nil
}

// One query per ordered pair of distinct shapes.
func PairwiseQueries(s *Scene, op Op) []Query {
	var queries []Query
	for _, a := range s.Shapes {
		for _, b := range s.Shapes {
			if a.Shape == b.Shape {
				continue
			}
			queries = append(queries, Query{Op: op, A: a, B: b})
		}
	}
	return queries
}
