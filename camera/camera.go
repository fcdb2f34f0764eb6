// Package camera implements a first-person fly camera driven by yaw and
// pitch angles. All angles on the public surface are in degrees.
package camera

import (
	"math"

	reMath "learn-opengl/math"
)

const (
	DefaultYaw             = -90.0
	DefaultPitch           = 0.0
	DefaultZoom            = 45.0
	DefaultMovementSpeed   = 2.5
	DefaultLookSensitivity = 0.1

	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// Direction selects a movement along the camera's local axes.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera is a roll-free first-person camera. Front, Right and Up are derived
// from yaw, pitch and the world up vector and are never set directly.
type Camera struct {
	position reMath.Vec3
	worldUp  reMath.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	front reMath.Vec3
	right reMath.Vec3
	up    reMath.Vec3

	MovementSpeed   float32
	LookSensitivity float32
}

// New creates a camera at position looking down -Z. The -90 degree default
// yaw is what turns the +X direction of the yaw/pitch formula into -Z.
func New(position reMath.Vec3, opts ...Option) *Camera {
	c := &Camera{
		position:        position,
		worldUp:         reMath.Vec3Up,
		yaw:             DefaultYaw,
		pitch:           DefaultPitch,
		zoom:            DefaultZoom,
		MovementSpeed:   DefaultMovementSpeed,
		LookSensitivity: DefaultLookSensitivity,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateVectors()
	return c
}

func (c *Camera) Position() reMath.Vec3 { return c.position }
func (c *Camera) WorldUp() reMath.Vec3  { return c.worldUp }
func (c *Camera) Front() reMath.Vec3    { return c.front }
func (c *Camera) Right() reMath.Vec3    { return c.right }
func (c *Camera) Up() reMath.Vec3       { return c.up }
func (c *Camera) Yaw() float32          { return c.yaw }
func (c *Camera) Pitch() float32        { return c.pitch }

// Zoom is the vertical field of view in degrees.
func (c *Camera) Zoom() float32 { return c.zoom }

func (c *Camera) SetPosition(pos reMath.Vec3) {
	c.position = pos
}

func (c *Camera) MoveForward(dt float32) {
	c.position = c.position.Add(c.front.Mul(c.MovementSpeed * dt))
}

func (c *Camera) MoveBackward(dt float32) {
	c.position = c.position.Sub(c.front.Mul(c.MovementSpeed * dt))
}

func (c *Camera) MoveLeft(dt float32) {
	c.position = c.position.Sub(c.strafe().Mul(c.MovementSpeed * dt))
}

func (c *Camera) MoveRight(dt float32) {
	c.position = c.position.Add(c.strafe().Mul(c.MovementSpeed * dt))
}

// Move applies one of the four movements for dt seconds.
func (c *Camera) Move(dir Direction, dt float32) {
	switch dir {
	case Forward:
		c.MoveForward(dt)
	case Backward:
		c.MoveBackward(dt)
	case Left:
		c.MoveLeft(dt)
	case Right:
		c.MoveRight(dt)
	}
}

// strafe depends only on orientation, never on where the camera is.
func (c *Camera) strafe() reMath.Vec3 {
	return c.front.Cross(c.up).Normalize()
}

// ProcessLook turns the camera by raw pointer deltas scaled by
// LookSensitivity. With constrainPitch the pitch stays within ±89 degrees so
// the front vector never lines up with world up.
func (c *Camera) ProcessLook(deltaX, deltaY float32, constrainPitch bool) {
	c.yaw += deltaX * c.LookSensitivity
	c.pitch += deltaY * c.LookSensitivity
	if constrainPitch {
		c.pitch = reMath.Clamp(c.pitch, -MaxPitch, MaxPitch)
	}
	c.updateVectors()
}

// ProcessZoom narrows the field of view by a scroll offset.
func (c *Camera) ProcessZoom(offset float32) {
	c.zoom = reMath.Clamp(c.zoom-offset, MinZoom, MaxZoom)
}

// ViewMatrix maps world space into camera space: the camera sits at the
// origin looking down -Z.
func (c *Camera) ViewMatrix() reMath.Mat4 {
	return reMath.Mat4LookAt(c.position, c.position.Add(c.front), c.up)
}

// LookAtMatrix builds the same transform as ViewMatrix from its parts, a
// rotation into the camera basis followed by a translation to the eye.
func (c *Camera) LookAtMatrix() reMath.Mat4 {
	direction := c.front.Negate()
	right := c.up.Normalize().Cross(direction).Normalize()
	up := direction.Cross(right)

	rotation := reMath.Mat4{
		{right.X, up.X, direction.X, 0},
		{right.Y, up.Y, direction.Y, 0},
		{right.Z, up.Z, direction.Z, 0},
		{0, 0, 0, 1},
	}
	translation := reMath.Mat4Translation(c.position.Negate())
	return translation.Mul(rotation)
}

// ProjectionMatrix returns a perspective projection using the current zoom
// as the vertical field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) reMath.Mat4 {
	return reMath.Mat4Perspective(reMath.Radians(c.zoom), aspect, near, far)
}

func (c *Camera) updateVectors() {
	yaw := float64(reMath.Radians(c.yaw))
	pitch := float64(reMath.Radians(c.pitch))

	front := reMath.Vec3{
		X: float32(math.Cos(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
