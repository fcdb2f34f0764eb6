package main

import (
	"image"
	"image/color"

	reMath "learn-opengl/math"
)

// cubeVertices is a unit cube as 36 vertices of position (3) and uv (2).
var cubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

var cubePositions = []reMath.Vec3{
	{X: 0.0, Y: 0.0, Z: 0.0},
	{X: 2.0, Y: 5.0, Z: -15.0},
	{X: -1.5, Y: -2.2, Z: -2.5},
	{X: -3.8, Y: -2.0, Z: -12.3},
	{X: 2.4, Y: -0.4, Z: -3.5},
	{X: -1.7, Y: 3.0, Z: -7.5},
	{X: 1.3, Y: -2.0, Z: -2.5},
	{X: 1.5, Y: 2.0, Z: -2.5},
	{X: 1.5, Y: 0.2, Z: -1.5},
	{X: -1.3, Y: 1.0, Z: -1.5},
}

var cubeAxis = reMath.NewVec3(1.0, 0.3, 0.5)

// cubeModel places cube i, tilted by a fixed per-cube angle.
func cubeModel(i int, pos reMath.Vec3) reMath.Mat4 {
	angle := reMath.Radians(20 * float32(i))
	return reMath.Mat4RotationAxis(cubeAxis, angle).Mul(reMath.Mat4Translation(pos))
}

// checkerImage splits a size x size image into tiles x tiles squares.
func checkerImage(size, tiles int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dark := color.RGBA{R: 120, G: 78, B: 40, A: 255}
	light := color.RGBA{R: 196, G: 148, B: 92, A: 255}
	cell := size / tiles
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// ringImage draws concentric rings on a transparent background.
func ringImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float32(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := reMath.NewVec2(float32(x)-center, float32(y)-center)
			r := d.X*d.X + d.Y*d.Y
			if int(r)/(size*4)%2 == 0 && r < center*center {
				img.SetRGBA(x, y, color.RGBA{R: 250, G: 210, B: 40, A: 255})
			}
		}
	}
	return img
}
