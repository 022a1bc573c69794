package main

import (
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lukosev/flipbook/core"
	"github.com/lukosev/flipbook/frame"
)

func init() {
	runtime.LockOSThread()
}

// Process exit codes. Zero is reserved for user-initiated termination.
const (
	exitSurfaceFailed = 1
	exitGPUFailed     = 2
)

func newWindow(cfg core.RendererConfiguration) (*sdl.Window, error) {
	for _, hint := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
	} {
		if err := sdl.GLSetAttribute(hint.attr, hint.value); err != nil {
			return nil, err
		}
	}

	return sdl.CreateWindow("Flipbook",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_OPENGL)
}

// platform adapts the SDL window and event queue to the render loop's
// windowing boundary
type platform struct {
	window *sdl.Window
	escape bool
	close  bool
}

// Present implements interface
func (p *platform) Present() {
	p.window.GLSwap()
}

// PollEvents implements interface
func (p *platform) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Type == sdl.KEYDOWN && et.Keysym.Sym == sdl.K_ESCAPE {
				p.escape = true
			}
		case *sdl.QuitEvent:
			p.close = true
		}
	}
}

// EscapePressed implements interface
func (p *platform) EscapePressed() bool {
	return p.escape
}

// CloseRequested implements interface
func (p *platform) CloseRequested() bool {
	return p.close
}

func main() {
	os.Exit(run())
}

// run holds the whole viewer lifetime so that the deferred context,
// window and SDL teardown fire on every exit path before the process
// exit code is returned
func run() int {
	configuration, err := core.FromEnv()
	if err != nil {
		log.Error(err)
		return exitSurfaceFailed
	}

	// the whole animation is generated up front, before any GPU
	// resource exists
	store, err := frame.NewStore(
		configuration.Renderer.ScreenWidth,
		configuration.Renderer.ScreenHeight,
		configuration.Renderer.FrameCount)
	if err != nil {
		log.Error(err)
		return exitSurfaceFailed
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Error("sdl.Init(): ", err)
		return exitSurfaceFailed
	}
	defer sdl.Quit()

	window, err := newWindow(configuration.Renderer)
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

	return runViewer(
		core.NewTime(configuration.Time),
		&platform{window: window},
		core.NewOpenGLRenderer(configuration.Renderer),
		store)
}

// runViewer initialises the renderer and drives the render loop. The
// renderer's GPU objects are released on every exit path, including a
// failed startup, and always before the caller tears the context down.
func runViewer(t core.Time, plt core.Platform, rnd core.Renderer, store *frame.Store) int {
	defer rnd.Destroy()

	if err := rnd.Initialise(); err != nil {
		log.Error(err)
		return exitGPUFailed
	}

	if err := core.Run(t, plt, rnd, store); err != nil {
		log.Error(err)
		return exitGPUFailed
	}
	return 0
}
