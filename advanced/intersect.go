package advanced

// Parametric line-line intersection between a ray and one obstacle. With the
// ray as (x1,y1)-(x2,y2) and the obstacle as (x3,y3)-(x4,y4), t is the
// position along the ray and u the position along the obstacle. Both are
// bounded to [0, 1] inclusive, so touching an endpoint counts as a hit.
//
// A zero denominator means the lines are parallel or collinear (this also
// covers zero-length segments). That is not an error; the obstacle just
// doesn't occlude this ray.
func Intersect(ray, obstacle Segment) (Point, bool) {
	x1, y1 := ray.A.X, ray.A.Y
	x2, y2 := ray.B.X, ray.B.Y
	x3, y3 := obstacle.A.X, obstacle.A.Y
	x4, y4 := obstacle.B.X, obstacle.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	if t < 0 || t > 1 {
		return Point{}, false
	}
	u := ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / denom
	if u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}

// Find the hit closest to the ray's origin. Distances are compared squared and
// at full precision; two hits less than a unit apart must still resolve
// correctly. When two hits are exactly as far, the earlier obstacle wins.
//
// This only reads the obstacle set, so any number of rays can run it at once.
func NearestIntersection(ray Segment, obstacles ObstacleSet) (Point, bool) {
	var (
		nearest     Point
		nearestDist float64
		found       bool
	)
	for _, obstacle := range obstacles {
		point, ok := Intersect(ray, obstacle)
		if !ok {
			continue
		}
		dist := ray.A.DistanceSquared(point)
		if !found || dist < nearestDist {
			nearest = point
			nearestDist = dist
			found = true
		}
	}
	return nearest, found
}

// Every valid hit of the ray, in obstacle order. Mostly useful for debugging
// and for checking NearestIntersection against a brute force answer.
func AllIntersections(ray Segment, obstacles ObstacleSet) []Point {
	var points []Point
	for _, obstacle := range obstacles {
		if point, ok := Intersect(ray, obstacle); ok {
			points = append(points, point)
		}
	}
	return points
}
