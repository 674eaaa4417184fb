package raster

import "compute-rasterizer/internal/mathutil"

// ScreenPoint is a projected vertex: continuous pixel coordinates plus
// the undivided homogeneous divisor, retained as the depth proxy.
type ScreenPoint struct {
	X, Y float64
	W    float64
}

// Project transforms a world-space vertex into screen space. The vertex
// is lifted to (x, y, z, 1), multiplied by the combined transform, and
// perspective-divided; the divisor W is kept undivided for depth.
//
// Project never fails. There is no frustum or near-plane clipping:
// vertices with W <= 0 produce degenerate or off-screen coordinates
// that the downstream stages tolerate rather than reject. Scenes that
// straddle the camera plane render incorrectly but safely.
func Project(v mathutil.Vec3, transform mathutil.Mat4, width, height int) ScreenPoint {
	h := transform.MulVec4(mathutil.Point4(v))
	return ScreenPoint{
		X: h[0] / h[3] * float64(width),
		Y: h[1] / h[3] * float64(height),
		W: h[3],
	}
}
