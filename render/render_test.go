package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestRender(t *testing.T) {
	box := shapes.NewAxisBox(shapes.V(5, 5), shapes.V(10, 10), 0)
	opts := DefaultOptions()
	c := Render(Items(box), opts)

	// 10 units at 10 pixels per unit, plus 20 pixels of padding on each side
	assert.Equal(t, 140, c.Width())
	assert.Equal(t, 140, c.Height())

	img := c.Image()
	// The box is an outline, so the middle is untouched
	assert.True(t, sameColor(opts.Background, img.At(70, 70)), "center should be background")
	// Top edge midpoint (5, 0) lands at pixel (70, 20)
	assert.False(t, sameColor(opts.Background, img.At(70, 20)), "top edge should be drawn")
	// Left edge midpoint (0, 5) lands at pixel (20, 70)
	assert.False(t, sameColor(opts.Background, img.At(20, 70)), "left edge should be drawn")
	// Corner (10, 10) lands at pixel (120, 120)
	assert.True(t, sameColor(opts.Corner, img.At(120, 120)), "corner marker should be drawn")
	// Well outside the box
	assert.True(t, sameColor(opts.Background, img.At(5, 5)))
}

func TestRender_RotatedEdges(t *testing.T) {
	// A diamond: edges are diagonal, so only the rotated quads can cover the
	// midpoints of its sides.
	diamond, err := shapes.NewPolygon(0, shapes.V(0, 0),
		shapes.V(0, -5), shapes.V(5, 0), shapes.V(0, 5), shapes.V(-5, 0))
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Padding = 10
	img := Render(Items(diamond), opts).Image()

	// Side midpoint (2.5, -2.5) -> pixel (10 + 75, 10 + 25)
	assert.False(t, sameColor(opts.Background, img.At(85, 35)))
	// The middle of the bounding box corner is outside the diamond
	assert.True(t, sameColor(opts.Background, img.At(20, 20)))
}

func TestRender_MarkersAndLabels(t *testing.T) {
	box := shapes.NewAxisBox(shapes.V(5, 5), shapes.V(10, 10), 0)
	opts := DefaultOptions()
	opts.Labels = true
	opts.Markers = []shapes.Vector2{shapes.V(20, 5)}
	c := Render([]Item{{Shape: box, Label: "box", Color: color.White}}, opts)

	// The marker widens the canvas
	assert.Equal(t, 240, c.Width())
	assert.True(t, sameColor(opts.Marker, c.Image().At(220, 70)))
}

func TestRender_Empty(t *testing.T) {
	c := Render(nil, DefaultOptions())
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 40, c.Height())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.png")
	box := shapes.NewAxisBox(shapes.V(5, 5), shapes.V(10, 10), 0.3)
	require.NoError(t, SavePNG(path, Items(box), DefaultOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = SavePNG(filepath.Join(t.TempDir(), "missing", "box.png"), Items(box), DefaultOptions())
	assert.Error(t, err)
}
