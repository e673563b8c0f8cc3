package component

// Transform is an entity's center position and bounding-box size in world
// units. Collision uses the axis-aligned box, not pixel-exact shapes.
type Transform struct {
	X, Y float64 // center
	W, H float64
}

// Overlaps reports axis-aligned bounding-box intersection with other.
func (t *Transform) Overlaps(other *Transform) bool {
	return t.X-t.W/2 < other.X+other.W/2 &&
		t.X+t.W/2 > other.X-other.W/2 &&
		t.Y-t.H/2 < other.Y+other.H/2 &&
		t.Y+t.H/2 > other.Y-other.H/2
}

// Velocity is world units per second.
type Velocity struct {
	VX, VY float64
}
