package math

import "github.com/go-gl/mathgl/mgl32"

// Radians converts an angle in degrees to radians.
func Radians(degrees float32) float32 {
	return mgl32.DegToRad(degrees)
}

// Degrees converts an angle in radians to degrees.
func Degrees(radians float32) float32 {
	return mgl32.RadToDeg(radians)
}

// Clamp limits value to the closed range [low, high].
func Clamp(value, low, high float32) float32 {
	return mgl32.Clamp(value, low, high)
}
