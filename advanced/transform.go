package advanced

import (
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// Maps a source canvas (origin at the top left, Y pointing down) into engine
// space (origin at the canvas center, Y pointing up):
//
//	x' = (x - MinX) - Width/2
//	y' = Height/2 - (y - MinY)
//
// The same mapping is applied to every coordinate of every record. The zero
// Transform has no canvas and maps every point to itself.
type Transform struct {
	// Top left corner of the source canvas. Non-zero only for viewBoxes that
	// don't start at the origin.
	MinX, MinY float64
	// Size of the source canvas
	Width, Height float64
}

// Leaves coordinates as they are, for records already in engine space
var Identity = Transform{}

func (t Transform) IsZero() bool {
	return t == Identity
}

func (t Transform) Apply(p Point) Point {
	if t.IsZero() {
		return p
	}
	return Point{
		X: (p.X - t.MinX) - t.Width/2,
		Y: t.Height/2 - (p.Y - t.MinY),
	}
}

func (t Transform) ApplySegment(s Segment) Segment {
	return Segment{t.Apply(s.A), t.Apply(s.B)}
}

// Map a point in engine space back to source canvas coordinates.
func (t Transform) Inverse(p Point) Point {
	if t.IsZero() {
		return p
	}
	return Point{
		X: p.X + t.Width/2 + t.MinX,
		Y: t.Height/2 - p.Y + t.MinY,
	}
}

// The distance from the canvas center to a corner. A cast over this canvas
// needs a max radius at least this large.
func (t Transform) HalfDiagonal() float64 {
	return math.Hypot(t.Width, t.Height) / 2
}

// Work out the canvas of an svg root element. The viewBox wins over
// width/height since it defines the user coordinate system that the line
// coordinates are written in.
func TransformFromSVG(root *svgparser.Element) (Transform, bool) {
	if root == nil {
		return Transform{}, false
	}
	if viewBox, ok := root.Attributes["viewBox"]; ok {
		fields := strings.FieldsFunc(viewBox, func(r rune) bool {
			return r == ' ' || r == ','
		})
		if len(fields) == 4 {
			var values [4]float64
			valid := true
			for i, field := range fields {
				value, err := parseLength(field)
				if err != nil {
					valid = false
					break
				}
				values[i] = value
			}
			if valid && values[2] > 0 && values[3] > 0 {
				return Transform{MinX: values[0], MinY: values[1], Width: values[2], Height: values[3]}, true
			}
		}
	}

	width, err := parseLength(root.Attributes["width"])
	if err != nil || width <= 0 {
		return Transform{}, false
	}
	height, err := parseLength(root.Attributes["height"])
	if err != nil || height <= 0 {
		return Transform{}, false
	}
	return Transform{Width: width, Height: height}, true
}

// Parse an svg length in user units. Only unitless values and px (which is the
// same thing) are accepted.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(value) {
		return 0, strconv.ErrRange
	}
	return value, nil
}
