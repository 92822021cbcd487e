package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/osuushi/raycast/advanced"
	"github.com/osuushi/raycast/internal/config"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of ray casting against the walls of an svg file. Every <line> in the
// svg is a wall. Prints one line per ray, and optionally draws the result.
//
// Coordinates are origin-centered with Y up, so the default light position
// (--x 0 --y 0) is the middle of the canvas.

var (
	app = kingpin.New("raycast", "Cast rays from a point light against the line segments of an svg.")

	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	svgPath    = app.Arg("svg", "Svg file with <line> walls. Reads stdin when omitted.").String()

	rays      = app.Flag("rays", "Number of rays.").Short('n').Action(seen("rays")).Int()
	originX   = app.Flag("x", "Light X position.").Action(seen("x")).Float64()
	originY   = app.Flag("y", "Light Y position.").Action(seen("y")).Float64()
	maxRadius = app.Flag("radius", "Far point radius. Defaults to half the canvas diagonal.").Action(seen("radius")).Float64()
	mode      = app.Flag("mode", "Execution mode.").Enum("sequential", "parallel")
	workers   = app.Flag("workers", "Worker count in parallel mode (0 = one per CPU).").Action(seen("workers")).Int()
	width     = app.Flag("width", "Canvas width, overrides the svg.").Action(seen("width")).Float64()
	height    = app.Flag("height", "Canvas height, overrides the svg.").Action(seen("height")).Float64()

	pngPath    = app.Flag("png", "Draw the cast to this png.").String()
	scale      = app.Flag("scale", "Scale of the png.").Action(seen("scale")).Float64()
	catImage   = app.Flag("imgcat", "Print the png to the terminal (iTerm).").Bool()
	list       = app.Flag("list-obstacles", "Print the loaded obstacles.").Bool()
	dumpConfig = app.Flag("dump-config", "Print the effective config and exit.").Bool()
	verbose    = app.Flag("verbose", "Debug logging.").Short('v').Bool()
)

// Flags given on the command line, so that they override the config file even
// when set to their zero value.
var flagSet = map[string]bool{}

func seen(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		flagSet[name] = true
		return nil
	}
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig()
	if err != nil {
		app.Fatalf("%v", err)
	}
	if *dumpConfig {
		pretty.Println(cfg)
		return
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("Cast failed", "error", err)
		os.Exit(1)
	}
}

// Defaults, then the config file, then whatever flags were given.
func loadConfig() (config.Cast, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	if *svgPath != "" {
		cfg.SVG = *svgPath
	}
	if flagSet["rays"] {
		cfg.Rays = *rays
	}
	if flagSet["x"] {
		cfg.Origin.X = *originX
	}
	if flagSet["y"] {
		cfg.Origin.Y = *originY
	}
	if flagSet["radius"] {
		cfg.MaxRadius = *maxRadius
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if flagSet["workers"] {
		cfg.Workers = *workers
	}
	if flagSet["width"] {
		cfg.Width = *width
	}
	if flagSet["height"] {
		cfg.Height = *height
	}
	if *pngPath != "" {
		cfg.PNG = *pngPath
	}
	if flagSet["scale"] {
		cfg.Scale = *scale
	}
	if *catImage {
		cfg.ImgCat = true
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Cast, stdin io.Reader, stdout io.Writer) error {
	executionMode, err := advanced.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	var (
		obstacles advanced.ObstacleSet
		canvas    = advanced.Transform{Width: cfg.Width, Height: cfg.Height}
	)
	if cfg.SVG == "" {
		obstacles, canvas, err = advanced.ReadSVG(stdin, canvas)
	} else {
		obstacles, canvas, err = advanced.ReadSVGFile(cfg.SVG, canvas)
	}
	if err != nil {
		return err
	}
	slog.Info("Loaded obstacles", "count", len(obstacles))
	if *list {
		fmt.Fprintln(stdout, obstacles.DbgString())
	}

	radius := cfg.MaxRadius
	if radius == 0 {
		radius = canvas.HalfDiagonal()
	}
	if radius < canvas.HalfDiagonal() {
		slog.Warn("Radius is smaller than the canvas half diagonal; some misses will stop inside the canvas",
			"radius", radius,
			"half_diagonal", canvas.HalfDiagonal())
	}

	origin := advanced.Point{X: cfg.Origin.X, Y: cfg.Origin.Y}
	result, err := castWithRecover(origin, obstacles, advanced.Options{
		RayCount:  cfg.Rays,
		MaxRadius: radius,
		Mode:      executionMode,
		Workers:   cfg.Workers,
	})
	if err != nil {
		return err
	}
	slog.Info("Cast done",
		"rays", len(result),
		"hits", result.HitCount(),
		"mode", executionMode,
		"radius", radius)

	fmt.Fprintln(stdout, result.String())

	if cfg.PNG != "" {
		scene := advanced.Scene{Canvas: canvas, Obstacles: obstacles, Result: result}
		if err := scene.SavePNG(cfg.PNG, cfg.Scale); err != nil {
			return err
		}
		if cfg.ImgCat {
			advanced.CatPNG(cfg.PNG, stdout)
		}
	}
	return nil
}

func castWithRecover(origin advanced.Point, obstacles advanced.ObstacleSet, opts advanced.Options) (result advanced.CastResult, err error) {
	defer func() {
		if recoveredErr := advanced.HandleCastPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return advanced.Cast(origin, obstacles, opts), nil
}
