package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestNewPolygon(t *testing.T) {
	square, err := NewPolygon(0, V(2, 2), V(0, 0), V(4, 0), V(4, 4), V(0, 4))
	require.NoError(t, err)
	assert.True(t, square.ContainsPoint(V(2, 2)))
	assert.False(t, square.ContainsPoint(V(5, 5)))
	assert.Len(t, square.Edges(), 4)

	line, err := NewPolygon(0, V(0, 0), V(0, 0), V(4, 0))
	assert.Nil(t, line)
	assert.EqualError(t, err, "polygon needs at least 3 corners, got 2")
}

func TestNewEllipse(t *testing.T) {
	ellipse, err := NewEllipse(V(0, 0), V(10, 5), 0, WithCornerStep(90))
	require.NoError(t, err)
	assert.Len(t, ellipse.Corners(), 4)
	assert.Len(t, ellipse.Edges(), 4)

	ellipse, err = NewEllipse(V(0, 0), V(10, 5), 0, WithCornerStep(0))
	assert.Nil(t, ellipse)
	assert.Error(t, err)
}

func TestClosestOf(t *testing.T) {
	closest, err := ClosestOf(V(0, 0), []Vector2{V(3, 3), V(1, 1)})
	require.NoError(t, err)
	assert.Equal(t, V(1, 1), closest)

	_, err = ClosestOf(V(0, 0), nil)
	assert.Error(t, err)
}

func TestSegmentIntersection(t *testing.T) {
	point, ok := NewSegment(V(0, 0), V(4, 4)).Intersects(NewSegment(V(0, 4), V(4, 0)))
	require.True(t, ok)
	assert.InDelta(t, 2, point.X, 1e-9)
	assert.InDelta(t, 2, point.Y, 1e-9)

	_, ok = NewSegment(V(0, 0), V(4, 0)).Intersects(NewSegment(V(0, 1), V(4, 1)))
	assert.False(t, ok)
}

func TestAxisBox(t *testing.T) {
	box := NewAxisBox(V(10, 10), V(4, 6), 0)
	assert.Equal(t, []Vector2{V(8, 7), V(12, 7), V(12, 13), V(8, 13)}, box.Corners())
	assert.Equal(t, AxisBox, box.Kind())
}
