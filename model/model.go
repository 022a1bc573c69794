package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// vertexStride is the byte size of a single packed vertex (two float32).
const vertexStride = 8

// indexSize is the byte size of a single index (uint32).
const indexSize = 4

// Mesh is CPU-side geometry ready for a one-time upload to GPU buffers.
// Vertices are 2D positions in normalized device coordinates, tightly
// packed. Indices describe triangles.
type Mesh struct {
	Vertices []glm.Vec2
	Indices  []uint32
}

// VertexData flattens the vertices into the packed float layout the
// vertex buffer expects.
func (m Mesh) VertexData() []float32 {
	data := make([]float32, 0, len(m.Vertices)*2)
	for _, v := range m.Vertices {
		data = append(data, v.X(), v.Y())
	}
	return data
}

// VertexBytes returns the size of the packed vertex data in bytes.
func (m Mesh) VertexBytes() int {
	return len(m.Vertices) * vertexStride
}

// IndexBytes returns the size of the index data in bytes.
func (m Mesh) IndexBytes() int {
	return len(m.Indices) * indexSize
}

// FullScreenQuad returns a quad that covers the whole viewport: four
// corner vertices and two triangles. Drawn with the viewer's program it
// touches every fragment on screen.
func FullScreenQuad() Mesh {
	return Mesh{
		Vertices: []glm.Vec2{
			{-1.0, 1.0},
			{1.0, 1.0},
			{1.0, -1.0},
			{-1.0, -1.0},
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}
