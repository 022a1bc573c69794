package core

import (
	"fmt"
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global viewer configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ScreenWidth  int
	ScreenHeight int

	// FrameCount is the length of the generated animation. It also
	// decides the bar width, ScreenWidth/FrameCount.
	FrameCount int
}

// FromEnv builds the viewer configuration from the environment,
// falling back to the stock 1024x768 window with a 10 frame animation.
func FromEnv() (Configuration, error) {
	var cfg Configuration

	for _, v := range []struct {
		key string
		def string
		dst *int
	}{
		{"FLIPBOOK_WIDTH", "1024", &cfg.Renderer.ScreenWidth},
		{"FLIPBOOK_HEIGHT", "768", &cfg.Renderer.ScreenHeight},
		{"FLIPBOOK_FRAMES", "10", &cfg.Renderer.FrameCount},
		{"FLIPBOOK_FPS", "0", &cfg.Time.FramesPerSecond},
	} {
		val, err := strconv.Atoi(envy.Get(v.key, v.def))
		if err != nil {
			return Configuration{}, fmt.Errorf("%s: %s", v.key, err.Error())
		}
		*v.dst = val
	}

	if cfg.Renderer.ScreenWidth <= 0 || cfg.Renderer.ScreenHeight <= 0 {
		return Configuration{}, fmt.Errorf("invalid screen dimensions %dx%d",
			cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
	}
	if cfg.Renderer.FrameCount <= 0 {
		return Configuration{}, fmt.Errorf("invalid frame count %d", cfg.Renderer.FrameCount)
	}
	return cfg, nil
}
