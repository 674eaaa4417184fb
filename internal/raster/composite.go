package raster

import "sync/atomic"

// Shade rescale applied to the depth proxy before storage. Callers are
// expected to stage their scene so view depths land the result in
// [0, 255]; see Shade.
const (
	depthScale = 50
	depthBias  = 400
)

// Shade derives a channel value from a vertex's depth proxy via the
// fixed affine rescale w*50 - 400, saturating to [0, 255]. Saturation
// (rather than wrapping) is the one clamping rule this implementation
// applies everywhere a shade is produced.
//
// The shade is taken from a single vertex per triangle, not interpolated
// across it: a crude, known approximation that keeps the fragment path
// branch-free.
func Shade(w float64) uint32 {
	s := w*depthScale - depthBias
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint32(s)
}

// Composite merges one fragment into the buffer under the "closer wins"
// rule: each of the pixel's three channels is lowered to
// min(current, shade) by an independent atomic update.
//
// Because every update is a monotonically decreasing atomic minimum on a
// single memory location, the final value of each channel converges to
// the smallest shade ever proposed for it, regardless of how concurrent
// invocations interleave. No lock and no separate depth test is
// involved.
//
// The three channels of one pixel are updated by three independent
// atomics, not atomically as a group: a concurrent reader could observe
// a pixel whose channels come from two different triangles. Grayscale
// shading makes the window invisible in practice, and the final state
// after the frame barrier is always consistent.
//
// Coordinates outside the buffer are a silent no-op, never a fault; scan
// conversion deliberately over-approximates and relies on this check.
func Composite(pb *PixelBuffer, x, y int, shade uint32) {
	idx := pb.Index(x, y)
	if idx < 0 {
		return
	}
	for c := 0; c < Channels; c++ {
		atomicMin(&pb.Pix[idx+c], shade)
	}
}

// atomicMin lowers *addr to v if v is smaller, retrying the CAS until
// the stored value is <= v.
func atomicMin(addr *uint32, v uint32) {
	for {
		cur := atomic.LoadUint32(addr)
		if cur <= v {
			return
		}
		if atomic.CompareAndSwapUint32(addr, cur, v) {
			return
		}
	}
}
