package core

import (
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/lukosev/flipbook/model"
)

// Quad owns the vertex and index buffers of the full-screen quad. Both
// are uploaded once as static data and never written again.
type Quad struct {
	vbo uint32
	ebo uint32
}

// UploadQuad transfers the mesh to GPU-resident buffers and wires the
// given position attribute to the vertex buffer's tightly packed 2D
// positions. The bound vertex array object records the setup.
func UploadQuad(mesh model.Mesh, positionAttr uint32) *Quad {
	quad := &Quad{}

	gl.GenBuffers(1, &quad.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, quad.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, mesh.VertexBytes(), gl.Ptr(mesh.VertexData()), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(positionAttr, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(positionAttr)

	gl.GenBuffers(1, &quad.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, quad.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, mesh.IndexBytes(), gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	return quad
}

// Destroy releases both buffers
func (q *Quad) Destroy() {
	if q.ebo != 0 {
		gl.DeleteBuffers(1, &q.ebo)
		q.ebo = 0
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
}
