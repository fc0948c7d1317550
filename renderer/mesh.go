package renderer

import (
	"github.com/achilleasa/glsteps/types"
	"github.com/go-gl/gl/v3.3-core/gl"
)

const floatSizeInBytes = 4

// A static triangle list uploaded to a vertex buffer. Vertex positions are
// bound to attribute location 0.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func NewMesh(vertices []types.Vec3) *Mesh {
	data := types.FlattenVec3(vertices)
	m := &Mesh{count: int32(len(vertices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSizeInBytes, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

func (m *Mesh) Unbind() {
	gl.BindVertexArray(0)
}

// Draw the mesh. The caller must have a program in use.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
