package advanced

import "math"

// Tolerance is only used for comparisons in tests and in debug helpers. The
// intersection math itself never rounds, since choosing the nearest hit
// depends on exact distance comparisons.
const Tolerance = 1e-6

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Squared Euclidean distance. Kept squared so that comparing two distances
// never goes through a square root.
func (p Point) DistanceSquared(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return dx*dx + dy*dy
}

func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
