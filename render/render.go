// Package render draws shapes to an image for debugging and previews.
//
// Edges are drawn the way a sprite renderer draws them: a unit quad moved to
// the edge's midpoint, rotated to its angle and stretched to its length. That
// makes the picture a direct check that Midpoint, Angle and Length agree with
// each other.
package render

import (
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/shapes"
	"github.com/osuushi/shapes/internal/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

type Options struct {
	// Pixels per unit
	Scale float64
	// Pixels of empty space around the shapes
	Padding int
	// Edge thickness and corner marker radius, in pixels
	LineWidth    float64
	CornerRadius float64
	// Write each shape's debug name at its rotation point
	Labels bool

	Background color.Color
	Edge       color.Color
	Corner     color.Color
	Marker     color.Color

	// Extra points to highlight, such as intersection points
	Markers []shapes.Vector2
}

func DefaultOptions() Options {
	return Options{
		Scale:        10,
		Padding:      20,
		LineWidth:    2,
		CornerRadius: 3,
		Background:   color.Black,
		Edge:         color.RGBA{0, 255, 0, 255},
		Corner:       color.RGBA{0, 255, 255, 255},
		Marker:       color.RGBA{255, 0, 0, 255},
	}
}

// One shape to draw. An empty label falls back to the shape's debug name when
// labels are on.
type Item struct {
	Shape *shapes.Shape
	Label string
	// Overrides Options.Edge for this shape
	Color color.Color
}

func Items(all ...*shapes.Shape) []Item {
	items := make([]Item, len(all))
	for i, shape := range all {
		items[i] = Item{Shape: shape}
	}
	return items
}

// Draw the items onto a new context sized to fit them. The context's
// transform is left mapping shape coordinates to pixels.
func Render(items []Item, opts Options) *gg.Context {
	bounds, ok := boundsOf(items, opts.Markers)
	if !ok {
		bounds = shapes.Bounds{}
	}

	width := int(math.Ceil(opts.Scale*bounds.Width())) + opts.Padding*2
	height := int(math.Ceil(opts.Scale*bounds.Height())) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetColor(opts.Background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding, scale, then move the top left of the shapes to
	// the origin. Y already grows downward in both spaces.
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-bounds.Left, -bounds.Top)

	// Widths are given in pixels, so undo the scale for them
	lineWidth := opts.LineWidth / opts.Scale
	radius := opts.CornerRadius / opts.Scale

	for _, item := range items {
		edgeColor := opts.Edge
		if item.Color != nil {
			edgeColor = item.Color
		}
		c.SetColor(edgeColor)
		for _, edge := range item.Shape.Edges() {
			drawEdge(c, edge, lineWidth)
		}
	}

	c.SetColor(opts.Corner)
	for _, item := range items {
		for _, corner := range item.Shape.Corners() {
			c.DrawCircle(corner.X, corner.Y, radius)
			c.Fill()
		}
	}

	c.SetColor(opts.Marker)
	for _, marker := range opts.Markers {
		c.DrawCircle(marker.X, marker.Y, radius*1.5)
		c.Fill()
	}

	if opts.Labels {
		drawLabels(c, items)
	}
	return c
}

// Stretch a unit square over the edge
func drawEdge(c *gg.Context, edge shapes.Segment, lineWidth float64) {
	midpoint := edge.Midpoint()
	c.Push()
	c.Translate(midpoint.X, midpoint.Y)
	c.Rotate(edge.Angle())
	c.Scale(edge.Length(), lineWidth)
	c.DrawRectangle(-0.5, -0.5, 1, 1)
	c.Fill()
	c.Pop()
}

func drawLabels(c *gg.Context, items []Item) {
	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(1, 1, 1)
	for _, item := range items {
		label := item.Label
		if label == "" {
			label = dbg.Name(item.Shape)
		}
		// Text is drawn in pixel space so that it isn't scaled along with the
		// shapes. Get the point in native coordinates first.
		pivot := item.Shape.RotationPoint()
		x, y := c.TransformPoint(pivot.X, pivot.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(label, x, y, 0.5, 0.5)
		c.Pop()
	}
}

func boundsOf(items []Item, markers []shapes.Vector2) (shapes.Bounds, bool) {
	var bounds shapes.Bounds
	found := false
	grow := func(b shapes.Bounds) {
		if !found {
			bounds = b
			found = true
			return
		}
		bounds = bounds.Union(b)
	}
	for _, item := range items {
		if item.Shape.CornerCount() == 0 {
			continue
		}
		grow(item.Shape.BoundingBox())
	}
	for _, m := range markers {
		grow(shapes.Bounds{Top: m.Y, Bottom: m.Y, Left: m.X, Right: m.X})
	}
	return bounds, found
}

func SavePNG(path string, items []Item, opts Options) error {
	if err := Render(items, opts).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Print the rendering to a terminal that understands the iTerm image
// protocol.
func Show(w io.Writer, items []Item, opts Options) error {
	tmp, err := os.CreateTemp("", "shapes-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := SavePNG(tmp.Name(), items, opts); err != nil {
		return err
	}
	if err := imgcat.CatFile(tmp.Name(), w); err != nil {
		return errors.Wrap(err, "printing preview")
	}
	return nil
}
