package raster

import (
	"fmt"
	"runtime"
	"sync"

	"compute-rasterizer/internal/mathutil"
)

// floatsPerTriangle is the flat-slice stride of one triangle:
// 3 vertices × 3 coordinates, no index buffer.
const floatsPerTriangle = 9

// Renderer runs the per-frame rasterization pass the way a compute
// dispatch would: a parallel clear over pixels, a full barrier, then a
// parallel fill over triangles. Within a stage, invocations run in no
// particular order; correctness of contested pixels rests entirely on
// the atomic minimum in Composite.
type Renderer struct {
	Width   int
	Height  int
	Workers int
}

// NewRenderer returns a renderer for a fixed screen size. If workers
// is 0 or negative, NumCPU is used.
func NewRenderer(width, height, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{Width: width, Height: height, Workers: workers}
}

// RenderFrame rasterizes one frame of the given triangle soup into pb.
//
// verts is a flat sequence of world-space positions, 9 floats per
// triangle; a length not divisible by 9 is rejected here, before any
// pipeline stage runs. transform is the combined model-view-projection
// matrix for the frame, shared read-only by every triangle.
//
// When RenderFrame returns, all compositing for the frame has completed
// and pb is safe to hand to a display or encode collaborator.
func (r *Renderer) RenderFrame(verts []float64, transform mathutil.Mat4, pb *PixelBuffer) error {
	if len(verts)%floatsPerTriangle != 0 {
		return fmt.Errorf("raster: vertex slice length %d is not divisible by %d", len(verts), floatsPerTriangle)
	}

	// Clear stage, then barrier: Clear does not return until every
	// pixel is reset, so no composite can observe a partial clear.
	r.Clear(pb)

	tris := len(verts) / floatsPerTriangle
	Logger().Debug("fill pass", "triangles", tris, "workers", r.Workers)

	r.parallelFor(tris, func(i int) {
		r.fillTriangle(verts[i*floatsPerTriangle:(i+1)*floatsPerTriangle], transform, pb)
	})
	return nil
}

// Clear resets every channel of every pixel to the far sentinel,
// dispatching row ranges across the workers. All clear work completes
// before Clear returns.
func (r *Renderer) Clear(pb *PixelBuffer) {
	rowLen := pb.Width * Channels
	r.parallelFor(pb.Height, func(y int) {
		row := pb.Pix[y*rowLen : (y+1)*rowLen]
		for i := range row {
			row[i] = ClearValue
		}
	})
}

// fillTriangle is one fill-stage invocation: project the triangle's
// three vertices, scan-convert its bounding box, and composite every
// interior pixel.
func (r *Renderer) fillTriangle(tri []float64, transform mathutil.Mat4, pb *PixelBuffer) {
	p0 := Project(mathutil.Vec3{tri[0], tri[1], tri[2]}, transform, r.Width, r.Height)
	p1 := Project(mathutil.Vec3{tri[3], tri[4], tri[5]}, transform, r.Width, r.Height)
	p2 := Project(mathutil.Vec3{tri[6], tri[7], tri[8]}, transform, r.Width, r.Height)

	// Shade from the first vertex's depth proxy only.
	shade := Shade(p0.W)

	// Clamp the iteration domain to the screen so off-screen boxes cost
	// nothing; Composite still bounds-checks every write.
	box := Bounds(p0, p1, p2).Clamp(pb.Width, pb.Height)
	for x, y := range box.Pixels() {
		if _, inside := Classify(p0, p1, p2, x, y); inside {
			Composite(pb, x, y, shade)
		}
	}
}

// parallelFor runs fn(0..n-1) across the worker pool and waits for all
// invocations to finish. Invocations within one dispatch are unordered.
func (r *Renderer) parallelFor(n int, fn func(i int)) {
	workers := r.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	work := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)
	wg.Wait()
}
