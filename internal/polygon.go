package internal

// Build a polygon from explicit corners, rotated as a whole about pivot. At
// least three corners are required. Edges follow the corners in the order
// given, closing from the last corner back to the first.
func NewPolygon(rotation float64, pivot Vector2, corners ...Vector2) *Shape {
	if len(corners) < 3 {
		fatalf("polygon needs at least 3 corners, got %d", len(corners))
	}

	rotated := make([]Vector2, len(corners))
	for i, corner := range corners {
		if rotation == 0 {
			rotated[i] = corner
			continue
		}
		rotated[i] = RotateAround(pivot, rotation, corner)
	}
	return newShape(Polygon, rotated, rotation, pivot)
}
