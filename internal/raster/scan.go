package raster

import "iter"

// Box is an integer pixel rectangle. Both Max bounds are inclusive when
// enumerated.
type Box struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Bounds returns the bounding box of three projected points, truncated
// toward the pixel grid. The inclusive max produces a fill up to half a
// pixel wider than an exclusive bound would, a chosen tolerance against
// seam gaps between adjacent triangles.
//
// Bounds does not clamp against screen dimensions; out-of-range
// coordinates are rejected at the buffer write.
func Bounds(p0, p1, p2 ScreenPoint) Box {
	return Box{
		MinX: int(min(p0.X, p1.X, p2.X)),
		MinY: int(min(p0.Y, p1.Y, p2.Y)),
		MaxX: int(max(p0.X, p1.X, p2.X)),
		MaxY: int(max(p0.Y, p1.Y, p2.Y)),
	}
}

// Clamp intersects the box with a width×height screen. The result may
// be empty (Min > Max), in which case Pixels yields nothing.
func (b Box) Clamp(width, height int) Box {
	if b.MinX < 0 {
		b.MinX = 0
	}
	if b.MinY < 0 {
		b.MinY = 0
	}
	if b.MaxX > width-1 {
		b.MaxX = width - 1
	}
	if b.MaxY > height-1 {
		b.MaxY = height - 1
	}
	return b
}

// Pixels enumerates every (x, y) in the box lazily, row-major, inclusive
// of both max bounds.
func (b Box) Pixels() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := b.MinY; y <= b.MaxY; y++ {
			for x := b.MinX; x <= b.MaxX; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
