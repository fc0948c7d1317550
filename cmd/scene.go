package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/glsteps/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the bundled scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("bundled scenes\n%s", sceneTable(scene.Builtin()))
	return nil
}

// Parse and validate a scene file without opening a window.
func CheckScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	list := make([]*scene.Scene, 0, ctx.NArg())
	for idx := 0; idx < ctx.NArg(); idx++ {
		sc, err := scene.Read(ctx.Args().Get(idx))
		if err != nil {
			return err
		}
		list = append(list, sc)
	}

	logger.Noticef("scene information\n%s", sceneTable(list))
	return nil
}

func sceneTable(list []*scene.Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "FPS", "Animation", "Vertices", "Description"})
	for _, sc := range list {
		fps := "unpaced"
		if sc.FPS > 0 {
			fps = fmt.Sprintf("%.1f", sc.FPS)
		}
		anim := string(sc.Animation.Kind)
		if anim == "" {
			anim = "none"
		}
		table.Append([]string{
			sc.Name,
			fps,
			anim,
			fmt.Sprintf("%d", len(sc.Vertices)),
			sc.Description,
		})
	}
	table.Render()
	return buf.String()
}
