package internal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Degrees between neighboring ellipse corners unless overridden.
const DefaultEllipseCornerStep = 20

type ellipseConfig struct {
	cornerStep int
	truncate   bool
}

type EllipseOption func(*ellipseConfig)

// Sample a corner every `degrees` degrees. 360/degrees corners are generated,
// rounding down, so steps that don't divide 360 leave a wider final edge.
func WithCornerStep(degrees int) EllipseOption {
	return func(c *ellipseConfig) {
		c.cornerStep = degrees
	}
}

// Truncate each sample offset to whole units before rotating. This is on by
// default: it snaps the outline to the pixel grid so that small ellipses
// don't jitter when redrawn.
func WithTruncation(truncate bool) EllipseOption {
	return func(c *ellipseConfig) {
		c.truncate = truncate
	}
}

// Approximate an ellipse centered on position with the given x and y radii,
// rotated about its center. Each sample is offset from position before it is
// rotated about position, so the outline stays centered there at any rotation.
func NewEllipse(position, radii Vector2, rotation float64, opts ...EllipseOption) *Shape {
	config := ellipseConfig{
		cornerStep: DefaultEllipseCornerStep,
		truncate:   true,
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.cornerStep <= 0 || config.cornerStep > 360 {
		fatalf("ellipse corner step must be between 1 and 360 degrees, got %d", config.cornerStep)
	}

	count := 360 / config.cornerStep
	corners := make([]Vector2, count)
	for i := range corners {
		angle := ToRadians(float64(i * config.cornerStep))
		offset := V(radii.X*math.Cos(angle), radii.Y*math.Sin(angle))
		if config.truncate {
			offset = V(math.Trunc(offset.X), math.Trunc(offset.Y))
		}
		corners[i] = RotateAround(position, rotation, r2.Add(position, offset))
	}
	return newShape(Ellipse, corners, rotation, position)
}
