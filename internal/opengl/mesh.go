package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is a non-indexed vertex array drawn as triangles.
type Mesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// NewMesh uploads interleaved float32 vertices. layout gives the component
// count of each attribute in order; attribute i is bound to location i.
func NewMesh(vertices []float32, layout ...int32) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	var stride int32
	for _, n := range layout {
		stride += n
	}
	if stride == 0 || int32(len(vertices))%stride != 0 {
		return nil, fmt.Errorf("vertex data of length %d does not match layout %v", len(vertices), layout)
	}

	m := &Mesh{VertexCount: int32(len(vertices)) / stride}
	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)

	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var offset int32
	for i, n := range layout {
		gl.VertexAttribPointerWithOffset(uint32(i), n, gl.FLOAT, false, stride*4, uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += n
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount)
}

func (m *Mesh) Destroy() {
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
}
