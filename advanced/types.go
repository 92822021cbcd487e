package advanced

// Coordinates are origin-centered with Y pointing up. Loaders translate from
// the source's own convention (see Transform) before anything reaches the
// engine.
type Point struct {
	X float64
	Y float64
}

// A finite straight line from A to B. Obstacles have no meaningful direction.
// For rays, A is always the light source.
type Segment struct {
	A Point
	B Point
}

// The walls of a scene. A set is built once and never mutated while a cast is
// running, so it can be shared between workers without locking. Duplicate,
// zero-length and crossing segments are all legal.
type ObstacleSet []Segment

// One ray of a cast. The segment runs from the origin to either the nearest
// obstacle hit or the far point on the bounding circle.
type RayResult struct {
	Segment
	// Angle in degrees, clockwise from up
	Angle float64
	// Whether the ray was stopped by an obstacle
	Hit bool
}

// All the rays of a single cast, in increasing angle order. Consumers draw this
// as a fan, so the order is part of the contract.
type CastResult []RayResult
