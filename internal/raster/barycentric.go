package raster

import (
	"math"

	"compute-rasterizer/internal/mathutil"
)

// Weights are barycentric coordinates relative to a triangle's three
// vertices. For a non-degenerate triangle they sum to 1; all three are
// non-negative exactly when the point lies inside.
type Weights [3]float64

// Classify computes the barycentric weights of pixel (x, y) with respect
// to the triangle p0 p1 p2 and reports whether the pixel is interior.
//
// Degenerate triangles (area determinant rounding to zero, |u.z| < 1)
// classify every point as outside; the returned weights then carry a
// negative component and must not be used for interpolation.
func Classify(p0, p1, p2 ScreenPoint, x, y int) (Weights, bool) {
	u := mathutil.Vec3{p2.X - p0.X, p1.X - p0.X, p0.X - float64(x)}.Cross(
		mathutil.Vec3{p2.Y - p0.Y, p1.Y - p0.Y, p0.Y - float64(y)})

	if math.Abs(u[2]) < 1 {
		return Weights{-1, 1, 1}, false
	}

	w := Weights{1 - (u[0]+u[1])/u[2], u[1] / u[2], u[0] / u[2]}
	return w, w[0] >= 0 && w[1] >= 0 && w[2] >= 0
}
