package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/achilleasa/glsteps/clock"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// An accepted frame observed while simulating the pacer.
type paceSample struct {
	Poll  int
	At    time.Duration
	Delta float64
}

type paceResult struct {
	Interval time.Duration
	Accepted []paceSample
	Skipped  int
}

// Run the frame pacer against a simulated clock that advances by step before
// every poll and print the accepted frames.
func SimulatePacer(ctx *cli.Context) error {
	setupLogging(ctx)

	polls := ctx.Int("polls")
	if polls <= 0 {
		return errors.New("number of polls must be positive")
	}

	res, err := simulatePacer(ctx.Float64("fps"), ctx.Duration("step"), ctx.Duration("resolution"), polls)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Poll", "Clock", "Delta (s)"})
	for _, sample := range res.Accepted {
		table.Append([]string{
			fmt.Sprintf("%d", sample.Poll),
			sample.At.String(),
			fmt.Sprintf("%.4f", sample.Delta),
		})
	}
	table.SetFooter([]string{"", "SKIPPED", fmt.Sprintf("%d / %d", res.Skipped, polls)})
	table.Render()

	logger.Noticef("pacer interval %s; accepted frames\n%s", res.Interval, buf.String())
	return nil
}

func simulatePacer(fps float64, step, resolution time.Duration, polls int) (*paceResult, error) {
	if step <= 0 {
		return nil, fmt.Errorf("clock step must be positive; got %s", step)
	}

	src := clock.NewManualSource(0)
	pacer, err := clock.NewPacer(fps, clock.Truncate(src, resolution))
	if err != nil {
		return nil, err
	}

	res := &paceResult{Interval: pacer.Interval()}
	for poll := 1; poll <= polls; poll++ {
		src.Advance(step)
		if pacer.Poll() {
			res.Skipped++
			continue
		}
		res.Accepted = append(res.Accepted, paceSample{
			Poll:  poll,
			At:    pacer.Last(),
			Delta: pacer.Delta(),
		})
	}

	return res, nil
}
