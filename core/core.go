package core

import (
	"image"
)

// Renderer describes the rendering machinery. It's created only with
// internal values set, it needs to be initialised with Initialise()
// before use.
type Renderer interface {
	// Initialise sets up the rendering pipeline: program, geometry
	// and the streaming texture. Must be called with a current
	// rendering context on the calling thread.
	Initialise() error

	// DrawFrame pushes the frame's pixels into the streaming texture
	// and rasterizes the full-screen quad with them
	DrawFrame(*image.RGBA) error

	// Destroy releases every GPU object the renderer owns. It must
	// run before the rendering context is torn down.
	Destroy()
}

// Platform is the windowing and input collaborator. The render loop
// treats it as an opaque boundary and relies only on these operations.
type Platform interface {
	// Present swaps the back buffer onto the screen. May block
	// briefly on vsync depending on the driver.
	Present()

	// PollEvents drains pending window and input events without
	// blocking
	PollEvents()

	// EscapePressed reports whether the escape key has been pressed
	EscapePressed() bool

	// CloseRequested reports whether the window was asked to close
	CloseRequested() bool
}

// ShaderType represents the pipeline stage a shader compiles for
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
)

func (t ShaderType) String() string {
	switch t {
	case VertexShaderType:
		return "vertex"
	case FragmentShaderType:
		return "fragment"
	}
	return "unknown"
}
