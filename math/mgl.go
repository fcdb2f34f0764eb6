package math

import "github.com/go-gl/mathgl/mgl32"

// MGL returns the matrix in mgl32's column-major layout. Mat4 rows map to
// mgl32 columns, so the memory order is identical and the result can be
// handed to glUniformMatrix4fv without transposing.
func (m Mat4) MGL() mgl32.Mat4 {
	var out mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m[i][j]
		}
	}
	return out
}

// Mat4FromMGL is the inverse of Mat4.MGL.
func Mat4FromMGL(src mgl32.Mat4) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = src[i*4+j]
		}
	}
	return m
}

func (v Vec3) MGL() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
