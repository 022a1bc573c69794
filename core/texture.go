package core

import (
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// StreamingTexture owns one GPU texture sized to the viewport. Its
// contents are replaced every tick; the texture object itself is never
// reallocated or resized.
type StreamingTexture struct {
	handle uint32
	width  int32
	height int32
}

// NewStreamingTexture allocates the texture object and its RGBA
// storage. Frames are stretched to fill the viewport, so the texture
// clamps to its edges and filters linearly on both axes.
func NewStreamingTexture(width, height int) *StreamingTexture {
	tex := &StreamingTexture{
		width:  int32(width),
		height: int32(height),
	}

	gl.GenTextures(1, &tex.handle)
	gl.BindTexture(gl.TEXTURE_2D, tex.handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, tex.width, tex.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)

	return tex
}

// Bind makes this the active texture for subsequent uploads and draws
func (tex *StreamingTexture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, tex.handle)
}

// Update replaces the full contents of the texture with the frame's
// pixels. The whole image is re-specified against the same handle, so
// repeated calls do not grow GPU memory.
func (tex *StreamingTexture) Update(pixels *image.RGBA) {
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pixels.Stride)/4)
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, tex.width, tex.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels.Pix))
}

// Destroy releases the texture object
func (tex *StreamingTexture) Destroy() {
	if tex.handle != 0 {
		gl.DeleteTextures(1, &tex.handle)
		tex.handle = 0
	}
}
