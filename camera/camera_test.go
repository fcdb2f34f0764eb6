package camera

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reMath "learn-opengl/math"
)

const eps = 1e-5

func assertVec(t *testing.T, expected, actual reMath.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, eps, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, eps, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, eps, msgAndArgs...)
}

func assertMat(t *testing.T, expected mgl32.Mat4, actual reMath.Mat4, delta float64) {
	t.Helper()
	got := actual.MGL()
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], delta, "element %d", i)
	}
}

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	front, right, up := c.Front(), c.Right(), c.Up()

	assert.InDelta(t, 1, front.Length(), eps, "front length")
	assert.InDelta(t, 1, right.Length(), eps, "right length")
	assert.InDelta(t, 1, up.Length(), eps, "up length")

	assert.InDelta(t, 0, front.Dot(right), eps, "front . right")
	assert.InDelta(t, 0, front.Dot(up), eps, "front . up")
	assert.InDelta(t, 0, right.Dot(up), eps, "right . up")

	// right-handed: right x up points backwards
	assertVec(t, front.Negate(), right.Cross(up), "handedness")
}

func TestNewDefaults(t *testing.T) {
	c := New(reMath.Vec3Zero)

	assert.Equal(t, reMath.Vec3Zero, c.Position())
	assert.Equal(t, reMath.Vec3Up, c.WorldUp())
	assert.Equal(t, float32(-90), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
	assert.Equal(t, float32(45), c.Zoom())
	assert.Equal(t, float32(2.5), c.MovementSpeed)
	assert.Equal(t, float32(0.1), c.LookSensitivity)

	assertVec(t, reMath.NewVec3(0, 0, -1), c.Front())
	assertVec(t, reMath.NewVec3(1, 0, 0), c.Right())
	assertVec(t, reMath.NewVec3(0, 1, 0), c.Up())
	assertOrthonormal(t, c)
}

func TestOptions(t *testing.T) {
	c := New(reMath.NewVec3(1, 2, 3),
		WithWorldUp(reMath.NewVec3(0, 2, 0)),
		WithYawPitch(0, 120),
		WithZoom(90),
		WithMovementSpeed(5),
		WithLookSensitivity(0.5),
	)

	assert.Equal(t, reMath.NewVec3(1, 2, 3), c.Position())
	assert.Equal(t, reMath.Vec3Up, c.WorldUp())
	assert.Equal(t, float32(0), c.Yaw())
	assert.Equal(t, float32(MaxPitch), c.Pitch())
	assert.Equal(t, float32(MaxZoom), c.Zoom())
	assert.Equal(t, float32(5), c.MovementSpeed)
	assert.Equal(t, float32(0.5), c.LookSensitivity)
	assertOrthonormal(t, c)

	c = New(reMath.Vec3Zero, WithWorldUp(reMath.Vec3Zero))
	assert.Equal(t, reMath.Vec3Up, c.WorldUp(), "zero world up keeps the default")
}

func TestWorldUpParallelToFrontCollapsesBasis(t *testing.T) {
	c := New(reMath.Vec3Zero, WithWorldUp(reMath.Vec3Right), WithYawPitch(0, 0))

	assertVec(t, reMath.Vec3Right, c.Front())
	assert.Equal(t, reMath.Vec3Zero, c.Right())
	assert.Equal(t, reMath.Vec3Zero, c.Up())

	c.ProcessLook(100, 0, true)
	assertOrthonormal(t, c)
}

func TestYawZeroLooksDownPositiveX(t *testing.T) {
	c := New(reMath.Vec3Zero, WithYawPitch(0, 0))
	assertVec(t, reMath.Vec3Right, c.Front())
	assertVec(t, reMath.NewVec3(0, 0, 1), c.Right())
}

func TestProcessLookConstrainsPitch(t *testing.T) {
	c := New(reMath.Vec3Zero)

	c.ProcessLook(0, 10000, true)
	assert.Equal(t, float32(89), c.Pitch())
	assertOrthonormal(t, c)

	c.ProcessLook(0, -50000, true)
	assert.Equal(t, float32(-89), c.Pitch())
	assertOrthonormal(t, c)
}

func TestProcessLookUnconstrained(t *testing.T) {
	c := New(reMath.Vec3Zero)
	c.ProcessLook(0, 1500, false)
	assert.InDelta(t, 150, c.Pitch(), 1e-4)
}

func TestProcessLookAppliesSensitivity(t *testing.T) {
	c := New(reMath.Vec3Zero)
	c.ProcessLook(100, 50, true)
	assert.InDelta(t, -80, c.Yaw(), eps)
	assert.InDelta(t, 5, c.Pitch(), eps)

	// looking up tilts front upwards
	assert.Greater(t, c.Front().Y, float32(0))
}

func TestProcessLookKeepsBasisOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	c := New(reMath.Vec3Zero)

	for i := 0; i < 1000; i++ {
		dx := (rng.Float32()*2 - 1) * 2000
		dy := (rng.Float32()*2 - 1) * 2000
		c.ProcessLook(dx, dy, true)

		require.GreaterOrEqual(t, c.Pitch(), float32(-89))
		require.LessOrEqual(t, c.Pitch(), float32(89))
		assertOrthonormal(t, c)
	}
}

func TestProcessZoomClamps(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	c := New(reMath.Vec3Zero)

	c.ProcessZoom(100)
	assert.Equal(t, float32(1), c.Zoom())
	c.ProcessZoom(-100)
	assert.Equal(t, float32(45), c.Zoom())
	c.ProcessZoom(5)
	assert.Equal(t, float32(40), c.Zoom())

	for i := 0; i < 500; i++ {
		c.ProcessZoom((rng.Float32()*2 - 1) * 30)
		require.GreaterOrEqual(t, c.Zoom(), float32(1))
		require.LessOrEqual(t, c.Zoom(), float32(45))
	}
}

func TestMoveForwardBackwardRoundTrip(t *testing.T) {
	start := reMath.NewVec3(0, 0, 3)
	c := New(start)
	c.ProcessLook(123, -45, true)

	c.MoveForward(0.016)
	assert.NotEqual(t, start, c.Position())
	c.MoveBackward(0.016)
	assertVec(t, start, c.Position())
}

func TestMoveForwardFollowsFront(t *testing.T) {
	c := New(reMath.NewVec3(0, 0, 3))
	c.MoveForward(2)
	// speed 2.5 * 2s along -Z
	assertVec(t, reMath.NewVec3(0, 0, -2), c.Position())
}

func TestStrafeIndependentOfPosition(t *testing.T) {
	dt := float32(0.5)
	origins := []reMath.Vec3{
		reMath.Vec3Zero,
		reMath.NewVec3(0, 0, 3),
		reMath.NewVec3(-7, 2, 11),
		reMath.NewVec3(0, 5, 0),
	}

	for _, origin := range origins {
		c := New(origin)
		c.MoveRight(dt)
		assertVec(t, origin.Add(reMath.NewVec3(1.25, 0, 0)), c.Position(), "right from %v", origin)

		c.SetPosition(origin)
		c.MoveLeft(dt)
		assertVec(t, origin.Add(reMath.NewVec3(-1.25, 0, 0)), c.Position(), "left from %v", origin)
	}
}

func TestMoveDispatch(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected reMath.Vec3
	}{
		{Forward, reMath.NewVec3(0, 0, -2.5)},
		{Backward, reMath.NewVec3(0, 0, 2.5)},
		{Left, reMath.NewVec3(-2.5, 0, 0)},
		{Right, reMath.NewVec3(2.5, 0, 0)},
	}
	for _, tt := range tests {
		c := New(reMath.Vec3Zero)
		c.Move(tt.dir, 1)
		assertVec(t, tt.expected, c.Position(), "direction %d", tt.dir)
	}
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 100; i++ {
		pos := reMath.NewVec3(rng.Float32()*20-10, rng.Float32()*20-10, rng.Float32()*20-10)
		c := New(pos)
		c.ProcessLook(rng.Float32()*3600-1800, rng.Float32()*1000-500, true)

		view := c.ViewMatrix()
		origin := view.MulPoint(pos)
		assert.InDelta(t, 0, origin.X, 1e-4)
		assert.InDelta(t, 0, origin.Y, 1e-4)
		assert.InDelta(t, 0, origin.Z, 1e-4)

		// a point straight ahead lands on -Z
		ahead := view.MulPoint(pos.Add(c.Front().Mul(4)))
		assert.InDelta(t, 0, ahead.X, 1e-4)
		assert.InDelta(t, 0, ahead.Y, 1e-4)
		assert.InDelta(t, -4, ahead.Z, 1e-4)
	}
}

func TestViewMatrixMatchesMGL(t *testing.T) {
	c := New(reMath.NewVec3(1, 2, 3))
	c.ProcessLook(250, 120, true)

	eye := c.Position()
	oracle := mgl32.LookAtV(eye.MGL(), eye.Add(c.Front()).MGL(), c.Up().MGL())
	assertMat(t, oracle, c.ViewMatrix(), 1e-4)
}

func TestLookAtMatrixMatchesViewMatrix(t *testing.T) {
	c := New(reMath.NewVec3(-3, 1, 8))
	for _, d := range [][2]float32{{0, 0}, {300, 100}, {-900, -400}, {45, 890}} {
		c.ProcessLook(d[0], d[1], true)
		view, manual := c.ViewMatrix(), c.LookAtMatrix()
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.InDelta(t, view[i][j], manual[i][j], 1e-4, "[%d][%d]", i, j)
			}
		}
	}
}

func TestProjectionMatrixUsesZoom(t *testing.T) {
	c := New(reMath.Vec3Zero)
	c.ProcessZoom(15)

	proj := c.ProjectionMatrix(800.0/600.0, 0.1, 100)
	oracle := mgl32.Perspective(mgl32.DegToRad(30), 800.0/600.0, 0.1, 100)
	assertMat(t, oracle, proj, 1e-5)
}

func BenchmarkProcessLook(b *testing.B) {
	c := New(reMath.Vec3Zero)
	for i := 0; i < b.N; i++ {
		c.ProcessLook(1, 0.5, true)
	}
}
