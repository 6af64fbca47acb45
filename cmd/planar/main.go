package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/avandermeer/planar"
	"github.com/schollz/progressbar/v3"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
)

type Sweep struct {
	Output string `short:"o" default:"" desc:"Write intersection points to file (x y per line)"`
	Plot   string `default:"" desc:"Write an HTML plot of segments and intersections"`
	Quiet  bool   `short:"q" desc:"Only print the intersection count"`
	Input  string `index:"0" desc:"Segments file (x1 y1 x2 y2 per line)"`
}

type Count struct {
	NoBar bool   `desc:"Disable the progress bar"`
	Input string `index:"0" desc:"Segments file (x1 y1 x2 y2 per line)"`
}

type Gen struct {
	N      int     `short:"n" default:"1000" desc:"Number of segments"`
	Width  float64 `default:"1000" desc:"Width of the area segments are placed in"`
	Height float64 `default:"1000" desc:"Height of the area segments are placed in"`
	Length float64 `default:"10" desc:"Maximum segment extent per axis"`
	Seed   int64   `default:"0" desc:"Random seed, 0 uses the current time"`
	Output string  `index:"0" desc:"Output segments file"`
}

func main() {
	root := argp.NewCmd(&Sweep{}, "line segment intersections by plane sweep")
	root.AddCmd(&Count{}, "count", "Count pairwise segment relations by brute force")
	root.AddCmd(&Gen{}, "gen", "Generate a random segments file")
	root.Parse()
	root.PrintHelp()
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}

func (cmd *Sweep) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	log := newLogger()
	defer log.Sync()

	segments, err := planar.ReadSegmentsFile(cmd.Input)
	if err != nil {
		return err
	}
	log.Info("read segments", zap.String("file", cmd.Input), zap.Int("segments", len(segments)))

	start := time.Now()
	points := planar.FindIntersections(segments)
	log.Info("sweep complete", zap.Int("intersections", len(points)), zap.Duration("elapsed", time.Since(start)))

	if !cmd.Quiet {
		for _, p := range points {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
	}
	fmt.Println("Found intersections:", len(points))

	if cmd.Output != "" {
		if err := planar.WritePointsFile(cmd.Output, points); err != nil {
			return err
		}
		log.Info("wrote points", zap.String("file", cmd.Output))
	}
	if cmd.Plot != "" {
		if err := writePlot(cmd.Plot, segments, points); err != nil {
			return err
		}
		log.Info("wrote plot", zap.String("file", cmd.Plot))
	}
	return nil
}

func (cmd *Count) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	log := newLogger()
	defer log.Sync()

	segments, err := planar.ReadSegmentsFile(cmd.Input)
	if err != nil {
		return err
	}
	log.Info("read segments", zap.String("file", cmd.Input), zap.Int("segments", len(segments)))

	var progress func(done int)
	if !cmd.NoBar {
		bar := progressbar.Default(int64(len(segments)), "classifying pairs")
		progress = func(done int) {
			_ = bar.Set(done)
		}
	}

	start := time.Now()
	count := planar.CountRelations(segments, progress)

	fmt.Println("Intersecting lines:", count.Intersecting)
	fmt.Println("Colinear & overlapping lines:", count.CollinearOverlaps)
	log.Info("count complete",
		zap.Int("pairs", count.Pairs),
		zap.Int("intersecting", count.Intersecting),
		zap.Int("collinearOverlaps", count.CollinearOverlaps),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (cmd *Gen) Run() error {
	if cmd.Output == "" {
		return argp.ShowUsage
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	for i := 0; i < cmd.N; i++ {
		x := rnd.Float64() * cmd.Width
		y := rnd.Float64() * cmd.Height
		dx := (rnd.Float64()*2.0 - 1.0) * cmd.Length
		dy := (rnd.Float64()*2.0 - 1.0) * cmd.Length
		if dx == 0.0 && dy == 0.0 {
			i--
			continue
		}
		if _, err := fmt.Fprintf(f, "%g %g %g %g\n", x, y, x+dx, y+dy); err != nil {
			return err
		}
	}
	return nil
}
