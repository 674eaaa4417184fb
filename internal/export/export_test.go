package export

import (
	"os"
	"path/filepath"
	"testing"

	"compute-rasterizer/internal/raster"
)

func TestToNRGBA(t *testing.T) {
	pb := raster.NewPixelBuffer(2, 2)
	idx := pb.Index(1, 0)
	pb.Pix[idx], pb.Pix[idx+1], pb.Pix[idx+2] = 10, 20, 30

	img := ToNRGBA(pb)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}

	di := img.PixOffset(1, 0)
	if img.Pix[di] != 10 || img.Pix[di+1] != 20 || img.Pix[di+2] != 30 {
		t.Errorf("pixel (1, 0) = %v, want (10, 20, 30)", img.Pix[di:di+3])
	}
	if img.Pix[di+3] != 255 {
		t.Errorf("alpha = %d, want 255", img.Pix[di+3])
	}

	// Untouched pixels carry the far sentinel.
	bg := img.PixOffset(0, 1)
	if img.Pix[bg] != 255 || img.Pix[bg+1] != 255 || img.Pix[bg+2] != 255 {
		t.Errorf("background pixel = %v, want white", img.Pix[bg:bg+3])
	}
}

func TestSaveFormats(t *testing.T) {
	pb := raster.NewPixelBuffer(8, 8)
	img := ToNRGBA(pb)
	dir := t.TempDir()

	for _, ext := range []string{".png", ".tga", ".webp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "frame"+ext)
			if err := Save(path, img); err != nil {
				t.Fatal(err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Error("wrote empty file")
			}
		})
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	pb := raster.NewPixelBuffer(2, 2)
	path := filepath.Join(t.TempDir(), "frame.bmp")
	if err := Save(path, ToNRGBA(pb)); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
