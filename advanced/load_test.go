package advanced

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadObstacles_Wall(t *testing.T) {
	obstacles, canvas, err := LoadFixture("wall")
	require.NoError(t, err)
	assert.Equal(t, Transform{Width: 500, Height: 500}, canvas)
	require.Len(t, obstacles, 1)
	assert.Equal(t, Segment{Point{-10, 50}, Point{10, 50}}, obstacles[0])
}

func TestLoadObstacles_ViewBox(t *testing.T) {
	obstacles, canvas, err := LoadFixture("room")
	require.NoError(t, err)
	assert.Equal(t, Transform{Width: 500, Height: 500}, canvas)
	assert.Equal(t, ObstacleSet{
		{Point{-100, 100}, Point{100, 100}},
		{Point{100, 100}, Point{100, -100}},
		{Point{100, -100}, Point{-100, -100}},
		{Point{-100, -100}, Point{-100, 100}},
	}, obstacles)
}

func TestLoadObstacles_DegenerateRecords(t *testing.T) {
	obstacles := MustLoadFixture("pillars")
	require.Len(t, obstacles, 6)

	assert.Equal(t, Segment{Point{-150, 150}, Point{-50, 150}}, obstacles[0])
	// Attributes are read by name, not position
	assert.Equal(t, Segment{Point{50, 50}, Point{50, -50}}, obstacles[1])
	// Zero-length and duplicate walls are kept as they are
	assert.True(t, obstacles[4].IsDegenerate())
	assert.Equal(t, obstacles[0], obstacles[5])
}

func TestLoadObstacles_Malformed(t *testing.T) {
	t.Run("non-numeric", func(t *testing.T) {
		obstacles, _, err := LoadFixture("malformed")
		assert.Nil(t, obstacles)
		require.True(t, IsMalformed(err), "got %v", err)

		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, 1, loadErr.Index)
		assert.Equal(t, "line", loadErr.Element)
		assert.Contains(t, loadErr.Detail, "x2")
	})

	t.Run("missing attribute", func(t *testing.T) {
		obstacles, _, err := LoadFixture("missing")
		assert.Nil(t, obstacles)
		assert.EqualError(t, err, "malformed record 0 (<line>): missing attribute y2")
	})

	t.Run("infinite", func(t *testing.T) {
		svg := `<svg width="10" height="10"><line x1="0" y1="0" x2="1e999" y2="0"/></svg>`
		_, err := LoadObstacles(strings.NewReader(svg), Transform{})
		assert.True(t, IsMalformed(err), "got %v", err)
	})
}

func TestLoadObstacles_UnsupportedGeometry(t *testing.T) {
	obstacles, _, err := LoadFixture("unsupported")
	assert.Nil(t, obstacles)
	require.True(t, IsUnsupportedGeometry(err), "got %v", err)
	assert.False(t, IsMalformed(err))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, 2, loadErr.Index)
	assert.Equal(t, "path", loadErr.Element)
}

func TestLoadObstacles_Canvas(t *testing.T) {
	t.Run("no size in document", func(t *testing.T) {
		_, _, err := LoadFixture("nosize")
		assert.Error(t, err)
		assert.False(t, IsMalformed(err))
	})

	t.Run("explicit canvas", func(t *testing.T) {
		fixture, err := fixtures.Open("fixtures/nosize.svg")
		require.NoError(t, err)
		defer fixture.Close()

		obstacles, err := LoadObstacles(fixture, Transform{Width: 20, Height: 20})
		require.NoError(t, err)
		assert.Equal(t, ObstacleSet{{Point{-10, 10}, Point{0, 0}}}, obstacles)
	})

	t.Run("explicit canvas wins over the document", func(t *testing.T) {
		fixture, err := fixtures.Open("fixtures/wall.svg")
		require.NoError(t, err)
		defer fixture.Close()

		obstacles, canvas, err := ReadSVG(fixture, Transform{Width: 100, Height: 100})
		require.NoError(t, err)
		assert.Equal(t, 100.0, canvas.Width)
		assert.Equal(t, Segment{Point{190, -150}, Point{210, -150}}, obstacles[0])
	})
}

func TestLoadObstacles_HiddenContainers(t *testing.T) {
	load := func(svg string) (ObstacleSet, error) {
		return LoadObstacles(strings.NewReader(svg), Transform{})
	}

	t.Run("line in defs is not a wall", func(t *testing.T) {
		obstacles, err := load(`<svg width="100" height="100"><defs><line x1="0" y1="0" x2="100" y2="100"/></defs></svg>`)
		require.NoError(t, err)
		assert.Empty(t, obstacles)
	})

	t.Run("shapes in defs don't fail the load", func(t *testing.T) {
		obstacles, err := load(`<svg width="100" height="100">
			<defs><rect width="10" height="10"/></defs>
			<clipPath><circle r="5"/></clipPath>
			<symbol><path d="M0 0 L1 1"/></symbol>
			<line x1="0" y1="50" x2="100" y2="50"/>
		</svg>`)
		require.NoError(t, err)
		assert.Equal(t, ObstacleSet{{Point{-50, 0}, Point{50, 0}}}, obstacles)
	})

	t.Run("records after defs keep their index", func(t *testing.T) {
		_, err := load(`<svg width="100" height="100">
			<defs><line x1="0" y1="0" x2="1" y2="1"/></defs>
			<line x1="0" y1="0" x2="1"/>
		</svg>`)
		assert.EqualError(t, err, "malformed record 0 (<line>): missing attribute y2")
	})
}

func TestLoadObstacles_TransformAttribute(t *testing.T) {
	cases := map[string]string{
		"on the line": `<svg width="100" height="100">
			<line x1="0" y1="0" x2="10" y2="0"/>
			<line x1="0" y1="0" x2="10" y2="0" transform="rotate(45)"/>
		</svg>`,
		"on a group": `<svg width="100" height="100">
			<line x1="0" y1="0" x2="10" y2="0"/>
			<g><g transform="translate(50,0)"><line x1="0" y1="0" x2="10" y2="0"/></g></g>
		</svg>`,
	}
	for name, svg := range cases {
		t.Run(name, func(t *testing.T) {
			obstacles, err := LoadObstacles(strings.NewReader(svg), Transform{})
			assert.Nil(t, obstacles)
			require.True(t, IsUnsupportedGeometry(err), "got %v", err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, 1, loadErr.Index)
			assert.Equal(t, "line", loadErr.Element)
			assert.Contains(t, loadErr.Detail, "transform")
		})
	}

	// A transformed group with no geometry in it is harmless
	obstacles, err := LoadObstacles(strings.NewReader(`<svg width="100" height="100">
		<g transform="scale(2)"><title>empty</title></g>
		<line x1="0" y1="0" x2="10" y2="0"/>
	</svg>`), Transform{})
	require.NoError(t, err)
	assert.Len(t, obstacles, 1)
}

func TestLoadObstacles_NotSVG(t *testing.T) {
	_, err := LoadObstacles(strings.NewReader("this is not xml"), Transform{})
	assert.Error(t, err)
	assert.False(t, IsMalformed(err))
	assert.False(t, IsUnsupportedGeometry(err))
}

func TestLoadObstaclesFile(t *testing.T) {
	dir := t.TempDir()

	data, err := fixtures.ReadFile("fixtures/malformed.svg")
	require.NoError(t, err)
	path := filepath.Join(dir, "malformed.svg")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	// The LoadError survives the extra context
	_, err = LoadObstaclesFile(path, Transform{})
	assert.True(t, IsMalformed(err), "got %v", err)
	assert.Contains(t, err.Error(), path)

	_, err = LoadObstaclesFile(filepath.Join(dir, "nope.svg"), Transform{})
	assert.Error(t, err)
}

func TestObstacleSetFromRecords(t *testing.T) {
	canvas := Transform{Width: 500, Height: 500}
	obstacles, err := ObstacleSetFromRecords([][4]float64{
		{240, 200, 260, 200},
		{0, 0, 500, 500},
	}, canvas)
	require.NoError(t, err)
	assert.Equal(t, ObstacleSet{
		{Point{-10, 50}, Point{10, 50}},
		{Point{-250, 250}, Point{250, -250}},
	}, obstacles)

	obstacles, err = ObstacleSetFromRecords([][4]float64{
		{0, 0, 1, 1},
		{0, math.NaN(), 1, 1},
	}, canvas)
	assert.Nil(t, obstacles)
	assert.EqualError(t, err, "malformed record 1: y1=NaN is not a finite number")

	// Records already in engine space
	obstacles, err = ObstacleSetFromRecords([][4]float64{{1, 2, 3, 4}}, Identity)
	require.NoError(t, err)
	assert.Equal(t, ObstacleSet{{Point{1, 2}, Point{3, 4}}}, obstacles)

	obstacles, err = ObstacleSetFromRecords(nil, canvas)
	require.NoError(t, err)
	assert.Empty(t, obstacles)
}
