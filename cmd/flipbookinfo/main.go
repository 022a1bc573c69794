// flipbookinfo prints the rendering adapter description as JSON. It
// creates a hidden window just long enough to get a current context.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lukosev/flipbook/device"
)

func init() {
	runtime.LockOSThread()
}

// Process exit codes, shared with the viewer binary
const (
	exitSurfaceFailed = 1
	exitGPUFailed     = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Error("sdl.Init(): ", err)
		return exitSurfaceFailed
	}
	defer sdl.Quit()

	for _, hint := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
	} {
		if err := sdl.GLSetAttribute(hint.attr, hint.value); err != nil {
			log.Error("sdl.GLSetAttribute(): ", err)
			return exitSurfaceFailed
		}
	}

	window, err := sdl.CreateWindow("flipbookinfo",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		64, 64,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		log.Error("sdl.CreateWindow(): ", err)
		return exitSurfaceFailed
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		log.Error("sdl.GLCreateContext(): ", err)
		return exitSurfaceFailed
	}
	defer sdl.GLDeleteContext(glContext)

	if err := window.GLMakeCurrent(glContext); err != nil {
		log.Error("sdl.GLMakeCurrent(): ", err)
		return exitSurfaceFailed
	}

	if err := gl.Init(); err != nil {
		log.Error("gl.Init(): ", err)
		return exitGPUFailed
	}

	bytes, err := json.Marshal(device.Query())
	if err != nil {
		log.Error(err)
		return exitGPUFailed
	}
	fmt.Printf("%s\n", bytes)

	return 0
}
