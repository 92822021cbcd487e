// A 2D ray casting package for Go.
//
// Given a point light and a set of opaque line segment walls, this package
// finds where each of N evenly spaced rays first hits a wall, or where it
// leaves the working area if it hits nothing. The resulting fan of rays is
// the lit area around the light.
//
// The types and the lower level pieces (angle sampling, direction resolving,
// intersection, the visibility polygon) live in the advanced package.
package raycast

import (
	"context"
	"io"

	"github.com/osuushi/raycast/advanced"
)

type Point = advanced.Point
type Segment = advanced.Segment
type ObstacleSet = advanced.ObstacleSet
type RayResult = advanced.RayResult
type CastResult = advanced.CastResult
type Transform = advanced.Transform
type LoadError = advanced.LoadError

// Read walls from the <line> elements of an svg document. The canvas size is
// taken from the document unless transform is given. Any malformed or
// unsupported record fails the whole load with a *LoadError.
func LoadObstacles(r io.Reader, transform Transform) (ObstacleSet, error) {
	return advanced.LoadObstacles(r, transform)
}

// Cast rayCount rays from origin and return where each one stops. maxRadius
// should be at least the half diagonal of the working area. With parallel set,
// the rays are spread over one worker per CPU; the result is the same either
// way.
func Cast(origin Point, obstacles ObstacleSet, rayCount int, maxRadius float64, parallel bool) (result CastResult, err error) {
	defer func() {
		recoveredErr := advanced.HandleCastPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	mode := advanced.Sequential
	if parallel {
		mode = advanced.Parallel
	}
	return advanced.Cast(origin, obstacles, advanced.Options{
		RayCount:  rayCount,
		MaxRadius: maxRadius,
		Mode:      mode,
	}), nil
}

// Like Cast, but stops early if ctx is cancelled.
func CastContext(ctx context.Context, origin Point, obstacles ObstacleSet, rayCount int, maxRadius float64, parallel bool) (CastResult, error) {
	mode := advanced.Sequential
	if parallel {
		mode = advanced.Parallel
	}
	return advanced.CastContext(ctx, origin, obstacles, advanced.Options{
		RayCount:  rayCount,
		MaxRadius: maxRadius,
		Mode:      mode,
	})
}
