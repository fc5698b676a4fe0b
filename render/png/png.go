// Package png rasterizes a symbol's module grid to a PNG image, the way
// AshokShau-qrcode's writer.go does: each module becomes a scale x scale
// block of pixels in a 2-color paletted image.
package png

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	qrcode "github.com/sidneycadot/qrcode-go"
)

// Write rasterizes sym's Grid() to w as a PNG, scale pixels per module.
func Write(w io.Writer, sym *qrcode.Symbol, scale int) error {
	if scale < 1 {
		return fmt.Errorf("render/png: scale must be at least 1")
	}

	grid := sym.Grid()
	n := len(grid)
	dim := n * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{color.White, color.Black})
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !grid[row][col] {
				continue
			}
			startX, startY := col*scale, row*scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}
