package cmd

import (
	"github.com/achilleasa/glsteps/log"
	"github.com/urfave/cli"
)

var logger = log.New("glsteps")

// Apply the global verbosity flags. The most verbose flag wins.
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	case ctx.GlobalBool("q"):
		log.SetLevel(log.Warning)
	}
}
