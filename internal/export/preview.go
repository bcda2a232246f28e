package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"chunkmesh/internal/world"

	"golang.org/x/image/draw"
)

var previewEmpty = color.NRGBA{R: 10, G: 10, B: 18, A: 255}

// HeightmapImage renders one pixel per column, x to the right and z down.
// Brightness follows the highest solid cell; empty columns use the background.
func HeightmapImage(g *world.Grid) *image.NRGBA {
	w, h, d := g.Dims()
	img := image.NewNRGBA(image.Rect(0, 0, w, d))
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			top := g.TopSolid(x, z)
			if top < 0 {
				img.SetNRGBA(x, z, previewEmpty)
				continue
			}
			v := uint8(40 + 215*(top+1)/h)
			img.SetNRGBA(x, z, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// WriteHeightmapPreview writes a top-down PNG with each column scaled to scale×scale pixels.
func WriteHeightmapPreview(path string, g *world.Grid, scale int) error {
	if scale <= 0 {
		return fmt.Errorf("preview scale must be positive, got %d", scale)
	}

	src := HeightmapImage(g)
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, dst); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return file.Close()
}
