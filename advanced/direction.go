package advanced

import "math"

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Project an angle onto the circle of the given radius around the origin.
// Angles are in degrees, measured clockwise from "up" (+Y), so 0° gives
// (0, radius) and 90° gives (radius, 0).
func DirectionToPoint(radius, angle float64) Point {
	theta := Radians(angle)
	return Point{
		X: radius * math.Sin(theta),
		Y: radius * math.Cos(theta),
	}
}

// The far point for a ray leaving origin at the given angle. If the radius is
// at least the half diagonal of the working area, this lies outside every
// obstacle in the area, so a miss looks exactly like the ray leaving it.
func FarPoint(origin Point, radius, angle float64) Point {
	return origin.Add(DirectionToPoint(radius, angle))
}
