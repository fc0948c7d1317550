package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/achilleasa/glsteps/renderer"
	"github.com/achilleasa/glsteps/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Open a window and render a bundled or file-based scene.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q (%s)", sc.Name, sc.Description)
	r, err := renderer.NewInteractive(sc, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	displayLoopStats(r.Stats())
	return nil
}

// Collect renderer options from the run command flags.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	width, height, maxFrames := ctx.Int("width"), ctx.Int("height"), ctx.Int("max-frames")
	if width <= 0 || height <= 0 {
		return renderer.Options{}, fmt.Errorf("window dimensions must be positive; got %dx%d", width, height)
	}
	if maxFrames < 0 {
		return renderer.Options{}, fmt.Errorf("invalid frame budget %d", maxFrames)
	}

	opts := renderer.Options{
		FrameW:    uint32(width),
		FrameH:    uint32(height),
		Title:     ctx.String("title"),
		FPS:       ctx.Float64("fps"),
		Yield:     ctx.Duration("yield"),
		MaxFrames: uint64(maxFrames),
		VSync:     ctx.Bool("vsync"),
		Clock:     renderer.ClockKind(ctx.String("clock")),
	}
	if opts.FPS < 0 || math.IsNaN(opts.FPS) || math.IsInf(opts.FPS, 0) {
		return renderer.Options{}, fmt.Errorf("invalid fps override %v", opts.FPS)
	}
	if opts.Yield < 0 {
		return renderer.Options{}, fmt.Errorf("invalid yield duration %s", opts.Yield)
	}
	return opts, nil
}

// Resolve the scene from the --file flag, the --scene flag or the first
// positional argument, in that order.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if file := ctx.String("file"); file != "" {
		return scene.Read(file)
	}

	name := ctx.String("scene")
	if ctx.NArg() > 0 {
		name = ctx.Args().First()
	}
	if name == "" {
		return nil, errors.New("missing scene name or file")
	}
	return scene.Lookup(name)
}

func displayLoopStats(stats renderer.LoopStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Skipped polls", "Min delta", "Avg delta", "Max delta"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%d", stats.SkippedPolls),
		stats.MinDelta.String(),
		stats.AvgDelta.String(),
		stats.MaxDelta.String(),
	})
	table.SetFooter([]string{"", "", "", fmt.Sprintf("%.1f FPS", stats.FPS()), stats.Elapsed.String()})

	table.Render()
	logger.Noticef("render loop statistics\n%s", buf.String())
}
