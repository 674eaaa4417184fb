package viewmatrix

import (
	"math"

	"compute-rasterizer/internal/mathutil"
)

// Perspective returns a projection matrix mapping view space to unit
// viewport coordinates: x and y come out in [0, 1] for points inside
// the frustum (0.5, 0.5 at the view center), and the homogeneous
// divisor equals the view-space depth. The rasterizer scales the unit
// coordinates by the screen size after the perspective divide.
//
// The camera looks down +Z; +Y in view space is up on screen.
func Perspective(fovYDeg, aspect, near, far float64) mathutil.Mat4 {
	f := 1 / math.Tan(mathutil.Deg2Rad(fovYDeg)/2)
	return mathutil.Mat4{
		f / (2 * aspect), 0, 0.5, 0,
		0, -f / 2, 0.5, 0,
		0, 0, far / (far - near), -far * near / (far - near),
		0, 0, 1, 0,
	}
}

// LookAt returns a view matrix placing the camera at eye, looking at
// target, with up as the vertical reference. Forward is +Z in view
// space, matching Perspective.
func LookAt(eye, target, up mathutil.Vec3) mathutil.Mat4 {
	fwd := target.Sub(eye).Normalize()
	right := up.Cross(fwd).Normalize()
	vup := fwd.Cross(right)
	return mathutil.Mat4{
		right[0], right[1], right[2], -right.Dot(eye),
		vup[0], vup[1], vup[2], -vup.Dot(eye),
		fwd[0], fwd[1], fwd[2], -fwd.Dot(eye),
		0, 0, 0, 1,
	}
}

// Orbit builds the combined model-view-projection for one frame of a
// turntable orbit: the model spins by angle (radians) around Y while the
// camera sits distance units back on -Z, aimed at the origin.
//
// With the rasterizer's fixed shade rescale (w*50 - 400), a distance
// near 10 puts a unit-radius model's depths in the visible range.
func Orbit(angle, distance, fovYDeg, aspect float64) mathutil.Mat4 {
	proj := Perspective(fovYDeg, aspect, distance/10, distance*10)
	view := LookAt(mathutil.Vec3{0, 0, -distance}, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0})
	model := mathutil.RotY(angle)
	return mathutil.Mat4Mul(mathutil.Mat4Mul(proj, view), model)
}
