package advanced

import (
	"embed"
	"log"
	"math"
)

// Svg fixtures are available by name in the fixtures/ directory, sans
// extension. LoadFixture returns whatever the loader returns, so tests can
// check the failures too.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (ObstacleSet, Transform, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()
	return ReadSVG(fixture, Transform{})
}

// Like LoadFixture, but for fixtures that must load.
func MustLoadFixture(name string) ObstacleSet {
	obstacles, _, err := LoadFixture(name)
	if err != nil {
		log.Fatalf("Failed to load fixture %q: %v", name, err)
	}
	return obstacles
}

// Some ad hoc scenes

// A closed regular polygon of walls around the origin
func RegularRoom(sides int, radius float64) ObstacleSet {
	var obstacles ObstacleSet
	for i := 0; i < sides; i++ {
		a := DirectionToPoint(radius, FullTurn*float64(i)/float64(sides))
		b := DirectionToPoint(radius, FullTurn*float64(i+1)/float64(sides))
		obstacles = append(obstacles, Segment{a, b})
	}
	return obstacles
}

// A messy scene: crossing walls, a zero-length wall, duplicates, and walls
// that run straight through (0, 0).
func Clutter() ObstacleSet {
	obstacles := ObstacleSet{
		{Point{-100, 30}, Point{100, 30}},
		{Point{-100, 30}, Point{100, 30}},
		{Point{-80, -80}, Point{80, 80}},
		{Point{-80, 80}, Point{80, -80}},
		{Point{40, -60}, Point{40, -60}},
		{Point{0, -200}, Point{0, 200}},
		{Point{150, -10}, Point{150.5, 10}},
	}
	// A star of short walls further out
	for i := 0; i < 24; i++ {
		angle := 15 * float64(i)
		inner := DirectionToPoint(120+10*math.Mod(float64(i), 3), angle)
		outer := DirectionToPoint(170, angle+7)
		obstacles = append(obstacles, Segment{inner, outer})
	}
	return obstacles
}
