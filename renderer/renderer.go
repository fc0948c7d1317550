package renderer

import "github.com/achilleasa/glsteps/log"

var logger = log.New("renderer")

type Renderer interface {
	// Run the render loop until the window closes or the frame budget is used up.
	Render() error

	// Release GL resources and close the window.
	Close()

	// Get render loop statistics.
	Stats() LoopStats
}
