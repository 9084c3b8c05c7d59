package scene

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/shapes"
	"github.com/pkg/errors"
)

// LoadSVG builds a scene from the rect, polygon, ellipse and circle elements
// of an SVG document, in document order. Shapes are named by their id. The
// only transform understood is rotate(degrees [cx cy]). Polygons turn about
// (cx, cy), or the origin when it is left out; boxes and ellipses always turn
// about their own center. SVG scenes have no queries.
func LoadSVG(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	s := newScene()
	if err := s.addElement(root); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) addElement(el *svgparser.Element) error {
	shape, err := shapeOf(el)
	if err != nil {
		return errors.Wrapf(err, "<%s id=%q>", el.Name, el.Attributes["id"])
	}
	if shape != nil {
		if err := s.add(el.Attributes["id"], shape); err != nil {
			return err
		}
	}
	for _, child := range el.Children {
		if err := s.addElement(child); err != nil {
			return err
		}
	}
	return nil
}

func shapeOf(el *svgparser.Element) (*shapes.Shape, error) {
	switch el.Name {
	case "rect", "polygon", "ellipse", "circle":
	default:
		return nil, nil
	}

	attrs := attributes{el: el}
	rotation, pivot, hasPivot, err := parseRotate(el.Attributes["transform"])
	if err != nil {
		return nil, err
	}

	switch el.Name {
	case "rect":
		x, y := attrs.float("x"), attrs.float("y")
		w, h := attrs.float("width"), attrs.float("height")
		if attrs.err != nil {
			return nil, attrs.err
		}
		center := shapes.V(x+w/2, y+h/2)
		return shapes.NewAxisBox(center, shapes.V(w, h), rotation), nil

	case "polygon":
		corners, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		if !hasPivot {
			pivot = shapes.V(0, 0)
		}
		return shapes.NewPolygon(rotation, pivot, corners...)

	case "ellipse":
		position := shapes.V(attrs.float("cx"), attrs.float("cy"))
		radii := shapes.V(attrs.float("rx"), attrs.float("ry"))
		if attrs.err != nil {
			return nil, attrs.err
		}
		return shapes.NewEllipse(position, radii, rotation)
	}

	position := shapes.V(attrs.float("cx"), attrs.float("cy"))
	r := attrs.float("r")
	if attrs.err != nil {
		return nil, attrs.err
	}
	return shapes.NewEllipse(position, shapes.V(r, r), rotation)
}

// Reads numeric attributes, keeping the first error. Missing attributes are
// zero, as in SVG.
type attributes struct {
	el  *svgparser.Element
	err error
}

func (a *attributes) float(name string) float64 {
	raw, ok := a.el.Attributes[name]
	if !ok || a.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		a.err = errors.Errorf("invalid %s %q", name, raw)
		return 0
	}
	return v
}

// Points are separated by whitespace or commas: "0,0 4,0 4,4" or "0 0 4 0 4 4"
func parsePoints(raw string) ([]shapes.Vector2, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in points %q", raw)
	}
	corners := make([]shapes.Vector2, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Errorf("invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Errorf("invalid y value %q", fields[i+1])
		}
		corners = append(corners, shapes.V(x, y))
	}
	return corners, nil
}

var rotatePattern = regexp.MustCompile(`^\s*rotate\(\s*([^\s,)]+)(?:[\s,]+([^\s,)]+)[\s,]+([^\s,)]+))?\s*\)\s*$`)

// Returns the rotation in radians, and the pivot if one was given
func parseRotate(transform string) (rotation float64, pivot shapes.Vector2, hasPivot bool, err error) {
	if strings.TrimSpace(transform) == "" {
		return 0, pivot, false, nil
	}
	match := rotatePattern.FindStringSubmatch(transform)
	if match == nil {
		return 0, pivot, false, errors.Errorf("unsupported transform %q", transform)
	}
	values := make([]float64, 0, 3)
	for _, raw := range match[1:] {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, pivot, false, errors.Errorf("invalid number %q in transform", raw)
		}
		values = append(values, v)
	}
	rotation = shapes.ToRadians(values[0])
	if len(values) == 3 {
		return rotation, shapes.V(values[1], values[2]), true, nil
	}
	return rotation, pivot, false, nil
}
