// Package export is the display-blit side of the pipeline: it copies a
// finished pixel buffer into an image and encodes it to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"compute-rasterizer/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// ToNRGBA copies the pixel buffer into a fresh NRGBA image. The buffer
// layout is (x + y*width)*3 + channel with values already in [0, 255];
// alpha comes out fully opaque.
//
// The copy is also the synchronization handoff: call it only after the
// frame's rasterization has completed, and the rasterizer may then
// reuse the buffer for the next frame.
func ToNRGBA(pb *raster.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			si := (x + y*pb.Width) * raster.Channels
			di := img.PixOffset(x, y)
			img.Pix[di] = uint8(pb.Pix[si])
			img.Pix[di+1] = uint8(pb.Pix[si+1])
			img.Pix[di+2] = uint8(pb.Pix[si+2])
			img.Pix[di+3] = 255
		}
	}
	return img
}

// Save encodes img to path, choosing the format from the file
// extension: .webp, .tga or .png.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".tga":
		err = tga.Encode(f, img)
	case ".png":
		err = png.Encode(f, img)
	default:
		err = fmt.Errorf("unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}
