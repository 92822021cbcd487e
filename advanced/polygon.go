package advanced

// The lit area of a cast: the ray endpoints joined in angle order. With enough
// rays this approximates the true visibility polygon of the light.
type Polygon struct {
	Points []Point
}

func (result CastResult) Polygon() Polygon {
	points := make([]Point, len(result))
	for i, ray := range result {
		points[i] = ray.B
	}
	return Polygon{points}
}

// Count of rays that stopped on an obstacle
func (result CastResult) HitCount() int {
	count := 0
	for _, ray := range result {
		if ray.Hit {
			count++
		}
	}
	return count
}

// Even odd rule point-in-polygon. Used to ask whether a point is lit by a cast.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of polygon edges crossed by a horizontal ray from p towards +X
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		// Half open in Y so a vertex exactly on the scanline is counted once
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area. Positive when the points wind counterclockwise. A cast sweeps
// clockwise, so its polygon has negative signed area.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.X*next.Y - next.X*p.Y
	}
	return area / 2
}
