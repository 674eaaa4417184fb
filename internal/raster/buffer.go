package raster

// Channels is the number of interleaved channels per pixel (RGB).
const Channels = 3

// ClearValue is the "infinitely far" background sentinel. The buffer
// uses an inverted brightness convention: lower values are closer to the
// camera, so any in-range shade beats the sentinel under a plain
// numeric minimum.
const ClearValue = 255

// PixelBuffer is the shared render target: Width*Height*Channels values
// in [0,255], row-major, interleaved RGB. A channel at pixel (x, y) lives
// at index (x + y*Width)*Channels + c.
//
// Channels are stored as uint32 rather than uint8 so each one is a valid
// target for the atomic minimum updates performed during compositing.
// The buffer serves as both depth test and final color: there is no
// separate depth buffer.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewPixelBuffer allocates a buffer with every channel set to the far
// sentinel.
func NewPixelBuffer(w, h int) *PixelBuffer {
	pix := make([]uint32, w*h*Channels)
	for i := range pix {
		pix[i] = ClearValue
	}
	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

// Index returns the offset of pixel (x, y)'s first channel, or -1 when
// the coordinates fall outside the buffer.
func (pb *PixelBuffer) Index(x, y int) int {
	if x < 0 || y < 0 || x >= pb.Width || y >= pb.Height {
		return -1
	}
	return (x + y*pb.Width) * Channels
}
