package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
)

// This file parses the svg fixtures and outputs shapes. This is not a full (or
// even correct) svg parser. It parses the SVG, finds whatever the first
// polygon is, and converts that into an unrotated polygon Shape pivoting on the
// origin. If anything goes wrong, it bails.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Shape {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	corners := make([]Vector2, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		xy := strings.Split(pointString, ",")
		if len(xy) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", xy[0], err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", xy[1], err)
		}
		corners = append(corners, V(x, y))
	}
	return NewPolygon(0, V(0, 0), corners...)
}

// Some ad hoc fixtures

// The square from (0, 0) to (4, 4), wound clockwise on screen.
func Square() *Shape {
	return NewPolygon(0, V(2, 2), V(0, 0), V(4, 0), V(4, 4), V(0, 4))
}

// Two bars crossing like a plus sign. Their edges cross, but neither has a
// corner inside the other.
func Plus() (horizontal, vertical *Shape) {
	horizontal = NewAxisBox(V(5, 5), V(10, 2), 0)
	vertical = NewAxisBox(V(5, 5), V(2, 10), 0)
	return horizontal, vertical
}

// Helpers

func assertVectorInDelta(t *testing.T, expected, actual Vector2, msgAndArgs ...interface{}) {
	t.Helper()
	if !assert.InDelta(t, expected.X, actual.X, Epsilon, msgAndArgs...) ||
		!assert.InDelta(t, expected.Y, actual.Y, Epsilon, msgAndArgs...) {
		t.Logf("expected %# v, got %# v", pretty.Formatter(expected), pretty.Formatter(actual))
	}
}

func assertVectorsInDelta(t *testing.T, expected, actual []Vector2) {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		t.Log(pretty.Diff(expected, actual))
		return
	}
	for i := range expected {
		assertVectorInDelta(t, expected[i], actual[i], "vector %d", i)
	}
}

func collect(points func(func(Vector2) bool)) []Vector2 {
	var result []Vector2
	for p := range points {
		result = append(result, p)
	}
	return result
}
