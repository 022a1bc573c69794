package device

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Query reads the adapter description from the driver. The OpenGL
// functions must already be loaded and a context must be current on
// the calling thread.
func Query() AdapterInfo {
	return AdapterInfo{
		Vendor:          gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:         gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguage: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}
