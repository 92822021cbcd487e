package advanced

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a general svg parser. Walls are drawn as <line> elements, and
// that is all it understands. Anything else that draws geometry is rejected,
// since silently skipping it would leave a gap in a wall.

type LoadErrorKind int

const (
	// A record is missing a coordinate or has a value that isn't a finite number
	Malformed LoadErrorKind = iota
	// A record draws something other than a straight, finite segment
	UnsupportedGeometry
)

func (k LoadErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case UnsupportedGeometry:
		return "unsupported geometry"
	}
	return "unknown"
}

// Describes why one record could not be turned into an obstacle. A load that
// produces a LoadError never produces a partial obstacle set.
type LoadError struct {
	Kind LoadErrorKind
	// Index of the record among the geometry records of the source
	Index int
	// Element name of the record, if it came from an svg
	Element string
	Detail  string
}

func (e *LoadError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s record %d (<%s>): %s", e.Kind, e.Index, e.Element, e.Detail)
	}
	return fmt.Sprintf("%s record %d: %s", e.Kind, e.Index, e.Detail)
}

func IsMalformed(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && loadErr.Kind == Malformed
}

func IsUnsupportedGeometry(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && loadErr.Kind == UnsupportedGeometry
}

// Elements that draw something. Only lines can be obstacles.
var geometryElements = map[string]bool{
	"line":     true,
	"path":     true,
	"polyline": true,
	"polygon":  true,
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
}

// Elements whose contents are only drawn when referenced from elsewhere.
// Nothing under them is a wall.
var hiddenContainers = map[string]bool{
	"defs":     true,
	"symbol":   true,
	"clipPath": true,
	"mask":     true,
	"marker":   true,
	"pattern":  true,
}

var lineCoordinates = [4]string{"x1", "y1", "x2", "y2"}

// Read obstacles from an svg document. Every <line> becomes one segment,
// mapped into engine space with transform. If transform is zero, the canvas
// is taken from the document's viewBox or width/height.
func LoadObstacles(r io.Reader, transform Transform) (ObstacleSet, error) {
	obstacles, _, err := ReadSVG(r, transform)
	return obstacles, err
}

func LoadObstaclesFile(path string, transform Transform) (ObstacleSet, error) {
	obstacles, _, err := ReadSVGFile(path, transform)
	return obstacles, err
}

// Like LoadObstacles, but also returns the canvas that was used, which is
// needed to pick a radius or to draw the result.
func ReadSVG(r io.Reader, transform Transform) (ObstacleSet, Transform, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, Transform{}, errors.Wrap(err, "failed to parse svg")
	}
	return ObstaclesFromSVG(root, transform)
}

func ReadSVGFile(path string, transform Transform) (ObstacleSet, Transform, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Transform{}, errors.Wrapf(err, "could not open %q", path)
	}
	defer file.Close()

	obstacles, canvas, err := ReadSVG(file, transform)
	if err != nil {
		return nil, Transform{}, errors.Wrapf(err, "could not load obstacles from %q", path)
	}
	return obstacles, canvas, nil
}

// Convert an already parsed svg tree into obstacles.
func ObstaclesFromSVG(root *svgparser.Element, transform Transform) (ObstacleSet, Transform, error) {
	if root == nil || root.Name == "" {
		return nil, Transform{}, errors.New("empty svg document")
	}
	if root.Name != "svg" {
		return nil, Transform{}, errors.Errorf("document root is <%s>, not <svg>", root.Name)
	}
	if transform.IsZero() {
		var ok bool
		transform, ok = TransformFromSVG(root)
		if !ok {
			return nil, Transform{}, errors.New("svg has no usable viewBox or width/height, and no canvas was given")
		}
	}

	var records []geometryRecord
	walkElements(root, false, func(el *svgparser.Element, transformed bool) {
		if geometryElements[el.Name] {
			records = append(records, geometryRecord{el, transformed})
		}
	})

	obstacles := make(ObstacleSet, 0, len(records))
	for i, rec := range records {
		el := rec.element
		if el.Name != "line" {
			return nil, Transform{}, &LoadError{
				Kind:    UnsupportedGeometry,
				Index:   i,
				Element: el.Name,
				Detail:  "only straight <line> segments can be obstacles",
			}
		}
		if rec.transformed {
			return nil, Transform{}, &LoadError{
				Kind:    UnsupportedGeometry,
				Index:   i,
				Element: el.Name,
				Detail:  "transform attributes are not supported",
			}
		}

		var coords [4]float64
		for j, name := range lineCoordinates {
			raw, ok := el.Attributes[name]
			if !ok {
				return nil, Transform{}, &LoadError{
					Kind:    Malformed,
					Index:   i,
					Element: el.Name,
					Detail:  fmt.Sprintf("missing attribute %s", name),
				}
			}
			value, err := parseLength(raw)
			if err != nil {
				return nil, Transform{}, &LoadError{
					Kind:    Malformed,
					Index:   i,
					Element: el.Name,
					Detail:  fmt.Sprintf("attribute %s=%q is not a finite number", name, raw),
				}
			}
			coords[j] = value
		}
		obstacles = append(obstacles, recordToSegment(coords, transform))
	}

	slog.Debug("Obstacles loaded",
		"records", len(records),
		"obstacles", len(obstacles),
		"width", transform.Width,
		"height", transform.Height)
	return obstacles, transform, nil
}

// Build an obstacle set from raw (x1, y1, x2, y2) records in source
// coordinates. Pass Identity for records that are already in engine space.
func ObstacleSetFromRecords(records [][4]float64, transform Transform) (ObstacleSet, error) {
	obstacles := make(ObstacleSet, 0, len(records))
	for i, record := range records {
		for j, value := range record {
			if !isFinite(value) {
				return nil, &LoadError{
					Kind:   Malformed,
					Index:  i,
					Detail: fmt.Sprintf("%s=%v is not a finite number", lineCoordinates[j], value),
				}
			}
		}
		obstacles = append(obstacles, recordToSegment(record, transform))
	}
	return obstacles, nil
}

func recordToSegment(record [4]float64, transform Transform) Segment {
	return transform.ApplySegment(Segment{
		A: Point{record[0], record[1]},
		B: Point{record[2], record[3]},
	})
}

type geometryRecord struct {
	element *svgparser.Element
	// The element or one of its ancestors has a transform attribute
	transformed bool
}

// Depth first, in document order, skipping hidden containers
func walkElements(el *svgparser.Element, transformed bool, visit func(*svgparser.Element, bool)) {
	if hiddenContainers[el.Name] {
		return
	}
	if _, ok := el.Attributes["transform"]; ok {
		transformed = true
	}
	visit(el, transformed)
	for _, child := range el.Children {
		walkElements(child, transformed, visit)
	}
}
