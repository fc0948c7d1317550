package main

import (
	"os"
	"runtime"
	"time"

	"github.com/achilleasa/glsteps/cmd"
	"github.com/achilleasa/glsteps/log"
	"github.com/urfave/cli"
)

func init() {
	// GLFW and the opengl context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "glsteps"
	app.Usage = "step through small opengl scenes with a paced render loop"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "render a scene in an interactive window",
			Description: `
Open an OpenGL 3.3 core window and render a bundled scene (see list-scenes)
or a scene described by a TOML file. Scenes with a target frame rate are
paced by a polling frame limiter; press escape to close the window.`,
			ArgsUsage: "[scene_name]",
			Action:    cmd.RenderScene,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "bounce",
					Usage: "name of a bundled scene",
				},
				cli.StringFlag{
					Name:  "file, f",
					Usage: "path or http(s) URL of a TOML scene file",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "window height",
				},
				cli.StringFlag{
					Name:  "title",
					Usage: "window title (defaults to the scene name)",
				},
				cli.Float64Flag{
					Name:  "fps",
					Usage: "override the scene's target frame rate",
				},
				cli.DurationFlag{
					Name:  "yield",
					Value: time.Millisecond,
					Usage: "sleep after each skipped frame; 0 busy-polls",
				},
				cli.IntFlag{
					Name:  "max-frames",
					Usage: "exit after rendering this many frames",
				},
				cli.BoolFlag{
					Name:  "vsync",
					Usage: "synchronize buffer swaps with the display",
				},
				cli.StringFlag{
					Name:  "clock",
					Value: "system",
					Usage: "pacing clock: system, glfw or coarse (millisecond ticks)",
				},
			},
		},
		{
			Name:   "list-scenes",
			Usage:  "list bundled scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "check-scene",
			Usage:     "parse and validate scene files",
			ArgsUsage: "scene_file1.toml scene_file2.toml ...",
			Action:    cmd.CheckScene,
		},
		{
			Name:  "pace",
			Usage: "simulate the frame pacer against a stepped clock",
			Description: `
Drive the frame pacer with a simulated clock that advances by a fixed step
before every poll and print which polls were accepted as frames.`,
			Action: cmd.SimulatePacer,
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "fps",
					Value: 60,
					Usage: "target frame rate",
				},
				cli.DurationFlag{
					Name:  "step",
					Value: 5 * time.Millisecond,
					Usage: "clock advance per poll",
				},
				cli.DurationFlag{
					Name:  "resolution",
					Value: time.Millisecond,
					Usage: "clock resolution",
				},
				cli.IntFlag{
					Name:  "polls",
					Value: 60,
					Usage: "number of polls to simulate",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("glsteps").Error(err)
		os.Exit(1)
	}
}
