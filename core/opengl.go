package core

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"

	"github.com/lukosev/flipbook/device"
	"github.com/lukosev/flipbook/model"
)

const (
	vertexShaderFile   = "flipbook.vert.glsl"
	fragmentShaderFile = "flipbook.frag.glsl"
)

// shaderResources embeds the GLSL sources into the binary
var shaderResources = packr.NewBox("./shaders")

// NewOpenGLRenderer creates a not yet initialised OpenGL renderer
func NewOpenGLRenderer(cfg RendererConfiguration) Renderer {
	return &OpenGLRenderer{
		configuration: cfg,
	}
}

// OpenGLRenderer rasterizes frames onto a full-screen quad through an
// OpenGL 3.2 core context. All GPU objects are created in Initialise
// and released in Destroy; between the two, DrawFrame assumes the
// program, vertex array and texture it set up are still bound.
type OpenGLRenderer struct {
	configuration RendererConfiguration

	vao     uint32
	program *Program
	quad    *Quad
	texture *StreamingTexture
}

// Initialise implements interface
func (r *OpenGLRenderer) Initialise() error {
	if err := gl.Init(); err != nil {
		return errors.New("gl.Init(): " + err.Error())
	}

	info := device.Query()
	log.Infof("GL vendor = %s", info.Vendor)
	log.Infof("GL renderer = %s", info.Renderer)
	log.Infof("GL version = %s", info.Version)

	/* Vertex array object, records the quad's attribute setup */
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	/* Shader program */
	vertSrc, err := shaderResources.FindString(vertexShaderFile)
	if err != nil {
		return err
	}
	fragSrc, err := shaderResources.FindString(fragmentShaderFile)
	if err != nil {
		return err
	}

	vert, err := CompileShader(vertSrc, VertexShaderType)
	if err != nil {
		return err
	}
	frag, err := CompileShader(fragSrc, FragmentShaderType)
	if err != nil {
		vert.Destroy()
		return err
	}

	r.program, err = LinkProgram(vert, frag)

	// the stage objects are no longer needed once the program has
	// linked, and must not leak when it hasn't
	vert.Destroy()
	frag.Destroy()

	if err != nil {
		return err
	}
	r.program.Use()

	/* Geometry */
	position, err := r.program.AttribLocation("position")
	if err != nil {
		return err
	}
	r.quad = UploadQuad(model.FullScreenQuad(), position)

	/* Uniforms, set once */
	dims, err := r.program.UniformLocation("dims")
	if err != nil {
		return err
	}
	gl.Uniform2f(dims, float32(r.configuration.ScreenWidth), float32(r.configuration.ScreenHeight))

	tex, err := r.program.UniformLocation("tex")
	if err != nil {
		return err
	}
	gl.Uniform1i(tex, 0)

	/* Streaming texture */
	gl.ActiveTexture(gl.TEXTURE0)
	r.texture = NewStreamingTexture(r.configuration.ScreenWidth, r.configuration.ScreenHeight)
	r.texture.Bind()

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	return nil
}

// DrawFrame implements interface. The texture update and the indexed
// draw are distinct steps: the first moves pixels, the second
// rasterizes them.
func (r *OpenGLRenderer) DrawFrame(pixels *image.RGBA) error {
	r.texture.Update(pixels)
	gl.DrawElementsWithOffset(gl.TRIANGLES, 6, gl.UNSIGNED_INT, 0)
	return nil
}

// Destroy implements interface. Buffer and vertex array releases come
// first so that they precede the context teardown done by the caller.
func (r *OpenGLRenderer) Destroy() {
	if r.quad != nil {
		r.quad.Destroy()
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.texture != nil {
		r.texture.Destroy()
	}
	if r.program != nil {
		r.program.Destroy()
	}
}
