package camera

import reMath "learn-opengl/math"

// Option configures a Camera in New.
type Option func(*Camera)

// WithWorldUp sets the fixed reference used to keep the camera roll-free.
// The vector is normalized; a zero vector keeps the +Y default.
//
// World up must not be parallel to the front vector. When it is, front x up
// is zero and Right and Up collapse to the zero vector, so pick a yaw and
// pitch that look away from it.
func WithWorldUp(up reMath.Vec3) Option {
	return func(c *Camera) {
		if up == reMath.Vec3Zero {
			return
		}
		c.worldUp = up.Normalize()
	}
}

// WithYawPitch sets the initial orientation in degrees. Pitch is clamped
// the same way ProcessLook clamps it.
func WithYawPitch(yaw, pitch float32) Option {
	return func(c *Camera) {
		c.yaw = yaw
		c.pitch = reMath.Clamp(pitch, -MaxPitch, MaxPitch)
	}
}

func WithZoom(zoom float32) Option {
	return func(c *Camera) {
		c.zoom = reMath.Clamp(zoom, MinZoom, MaxZoom)
	}
}

func WithMovementSpeed(speed float32) Option {
	return func(c *Camera) {
		c.MovementSpeed = speed
	}
}

func WithLookSensitivity(sensitivity float32) Option {
	return func(c *Camera) {
		c.LookSensitivity = sensitivity
	}
}
