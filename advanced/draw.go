package advanced

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// This is for debugging purposes only. Real rendering belongs to whoever
// consumes a CastResult.

// Everything needed to draw a cast
type Scene struct {
	// The canvas the obstacles were loaded from. Its size is the image size.
	Canvas    Transform
	Obstacles ObstacleSet
	Result    CastResult
}

var (
	dbgBackground = colornames.Black
	dbgLight      = withAlpha(colornames.Gold, 0x80)
	dbgRay        = withAlpha(colornames.Orange, 0x40)
	dbgWall       = colornames.Cyan
	dbgHit        = colornames.Red
)

func withAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Draw the scene in engine space. The context is flipped so that Y points up
// and the canvas center is the origin, matching the coordinates of the scene.
func (s Scene) Draw(scale float64) *gg.Context {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		fatalf("cannot draw a scene without a canvas size: %+v", s.Canvas)
	}
	width := int(scale * s.Canvas.Width)
	height := int(scale * s.Canvas.Height)
	c := gg.NewContext(width, height)
	c.SetColor(dbgBackground)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(float64(width)/2, float64(height)/2)
	c.Scale(scale, -scale)

	// Fill the lit area as a fan of triangles between neighboring rays
	if len(s.Result) > 1 {
		origin := s.Result[0].A
		for i, ray := range s.Result {
			next := s.Result[CircularIndex(i+1, len(s.Result))]
			c.MoveTo(origin.X, origin.Y)
			c.LineTo(ray.B.X, ray.B.Y)
			c.LineTo(next.B.X, next.B.Y)
			c.ClosePath()
		}
		c.SetColor(dbgLight)
		c.Fill()
	}

	c.SetLineWidth(1)
	c.SetColor(dbgRay)
	for _, ray := range s.Result {
		c.DrawLine(ray.A.X, ray.A.Y, ray.B.X, ray.B.Y)
	}
	c.Stroke()

	c.SetLineWidth(2)
	c.SetColor(dbgWall)
	for _, wall := range s.Obstacles {
		c.DrawLine(wall.A.X, wall.A.Y, wall.B.X, wall.B.Y)
	}
	c.Stroke()

	c.SetColor(dbgHit)
	for _, ray := range s.Result {
		if ray.Hit {
			c.DrawCircle(ray.B.X, ray.B.Y, 1.5/scale)
		}
	}
	c.Fill()

	return c
}

func (s Scene) SavePNG(path string, scale float64) error {
	if err := s.Draw(scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not save %q", path)
	}
	return nil
}

// Print a png to the terminal (iTerm only)
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
