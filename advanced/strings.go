package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/raycast/internal/dbg"
)

// These are for debugging output. Hits print green and misses print red, which
// makes it easy to scan a long dump for the rays that got through.

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.A, s.B)
}

func (r RayResult) String() string {
	var status string
	if r.Hit {
		status = aurora.Green("hit").String()
	} else {
		status = aurora.Red("far").String()
	}
	return fmt.Sprintf("%7.2f° %s %s", r.Angle, status, r.B)
}

func (result CastResult) String() string {
	parts := make([]string, len(result))
	for i, ray := range result {
		parts[i] = ray.String()
	}
	return strings.Join(parts, "\n")
}

// List the obstacles with readable names. Identical segments share a name.
func (obstacles ObstacleSet) DbgString() string {
	parts := make([]string, len(obstacles))
	for i, obstacle := range obstacles {
		parts[i] = fmt.Sprintf("%4d %-24s %s", i, dbg.Name(obstacle), obstacle)
	}
	return strings.Join(parts, "\n")
}
