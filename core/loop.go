package core

import (
	"github.com/lukosev/flipbook/frame"
)

// Run drives the viewer until the user quits. Each tick, in order:
// select the frame for the tick, draw and rasterize it, present the
// swap-chain image, poll events, then test the exit conditions. Escape
// or a close request ends the loop after the tick that observed it, so
// no draw happens once termination is requested.
//
// Pacing comes from the time service; with FramesPerSecond set to 0
// the loop is throttled only by the presentation call.
func Run(t Time, plt Platform, rnd Renderer, store *frame.Store) error {
	defer t.Stop()

	for tick := 0; ; tick++ {
		<-t.FpsTicker().C

		if err := rnd.DrawFrame(store.Frame(tick)); err != nil {
			return err
		}
		plt.Present()
		plt.PollEvents()

		if plt.EscapePressed() || plt.CloseRequested() {
			return nil
		}
	}
}
