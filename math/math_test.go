package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Right x Up = Front in a right-handed system
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: zero vector should stay zero, got %v", Vec3Zero.Normalize())
	}
}

func TestRadians(t *testing.T) {
	cases := []struct {
		deg, rad float32
	}{
		{0, 0},
		{90, math.Pi / 2},
		{-90, -math.Pi / 2},
		{180, math.Pi},
		{45, math.Pi / 4},
	}
	for _, c := range cases {
		if got := Radians(c.deg); math.Abs(float64(got-c.rad)) > 1e-6 {
			t.Errorf("Radians(%v): expected %v, got %v", c.deg, c.rad, got)
		}
		if got := Degrees(c.rad); math.Abs(float64(got-c.deg)) > 1e-4 {
			t.Errorf("Degrees(%v): expected %v, got %v", c.rad, c.deg, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(100, -89, 89); got != 89 {
		t.Errorf("Clamp high: got %v", got)
	}
	if got := Clamp(-100, -89, 89); got != -89 {
		t.Errorf("Clamp low: got %v", got)
	}
	if got := Clamp(12.5, -89, 89); got != 12.5 {
		t.Errorf("Clamp inside: got %v", got)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}

	if m.Mul(m) != m {
		t.Error("Mul: identity * identity should be identity")
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	if got := m.MulPoint(Vec3Zero); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}
	if got := m.MulDir(Vec3Up); got != Vec3Up {
		t.Errorf("Translation: directions must not move, got %v", got)
	}
}

func TestMat4RotationAxis(t *testing.T) {
	// +X rotated 90 degrees counter-clockwise about +Y lands on -Z
	m := Mat4RotationAxis(Vec3Up, Radians(90))
	got := m.MulDir(Vec3Right)
	if !got.ApproxEqual(Vec3Back, 1e-5) {
		t.Errorf("RotationAxis: expected %v, got %v", Vec3Back, got)
	}
}

func TestMat4MulOrder(t *testing.T) {
	// Row vectors: the left matrix is applied first.
	rotate := Mat4RotationAxis(Vec3Up, Radians(90))
	move := Mat4Translation(NewVec3(10, 0, 0))
	got := rotate.Mul(move).MulPoint(Vec3Right)
	expected := NewVec3(10, 0, -1)
	if !got.ApproxEqual(expected, 1e-5) {
		t.Errorf("Mul order: expected %v, got %v", expected, got)
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := Radians(45)
	aspect := float32(16.0 / 9.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Mat4Perspective(fov, aspect, near, far)
	oracle := mgl32.Perspective(fov, aspect, near, far)

	if !matNear(m.MGL(), oracle, 1e-5) {
		t.Errorf("Perspective: expected %v, got %v", oracle, m.MGL())
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)

	m := Mat4LookAt(eye, target, Vec3Up)

	// The view matrix should transform the eye position to origin
	if got := m.MulPoint(eye); !got.ApproxEqual(Vec3Zero, 0.001) {
		t.Errorf("LookAt: expected eye to transform to origin, got %v", got)
	}
	// and the target onto the negative Z axis
	if got := m.MulPoint(target); !got.ApproxEqual(NewVec3(0, 0, -5), 0.001) {
		t.Errorf("LookAt: expected target on -Z, got %v", got)
	}
}

func TestMat4LookAtMatchesMGL(t *testing.T) {
	cases := []struct {
		eye, target Vec3
	}{
		{NewVec3(0, 0, 3), NewVec3(0, 0, 2)},
		{NewVec3(1, 2, 3), NewVec3(-4, 0.5, 7)},
		{NewVec3(-10, 5, 0), NewVec3(0, 0, 0)},
	}
	for _, c := range cases {
		m := Mat4LookAt(c.eye, c.target, Vec3Up)
		oracle := mgl32.LookAtV(c.eye.MGL(), c.target.MGL(), Vec3Up.MGL())
		if !matNear(m.MGL(), oracle, 1e-5) {
			t.Errorf("LookAt(%v, %v): expected %v, got %v", c.eye, c.target, oracle, m.MGL())
		}
	}
}

func TestMGLRoundTrip(t *testing.T) {
	m := Mat4RotationAxis(NewVec3(1, 1, 0), 0.7).Mul(Mat4Translation(NewVec3(1, 2, 3)))
	if got := Mat4FromMGL(m.MGL()); got != m {
		t.Errorf("MGL round trip: expected %v, got %v", m, got)
	}
	// mgl32 stores translation in elements 12..14
	mm := Mat4Translation(NewVec3(4, 5, 6)).MGL()
	if mm[12] != 4 || mm[13] != 5 || mm[14] != 6 {
		t.Errorf("MGL layout: expected translation in column 3, got %v", mm)
	}
}

// matNear compares element-wise with an absolute tolerance. mgl32's own
// ApproxEqualThreshold is relative and rejects 1e-9 against 0.
func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Cross(v2)
	}
}

func BenchmarkMat4LookAt(b *testing.B) {
	eye := NewVec3(1, 2, 3)
	target := NewVec3(0, 0, 0)

	for i := 0; i < b.N; i++ {
		_ = Mat4LookAt(eye, target, Vec3Up)
	}
}
