// Package raster draws the level background: a grid of rings masked to a
// bitmap of lit cells.
package raster

import (
	"image"
	"math"
)

const (
	Width  = 1280
	Height = 720
)

// smoothstep between a and b, a may be greater than b for a falling edge
func smoothstep(a, b, x float32) float32 {
	x = (x - a) / (b - a)
	x = float32(math.Max(math.Min(float64(x), 1), 0))
	return x * x * (3 - 2*x)
}

func round(x float32) int {
	return int(math.Round(float64(x)))
}

// Shade computes the grey level of pixel (x, y) of a w by h image
func Shade(x, y, w, h int) uint8 {
	fw, fh := float32(w), float32(h)
	ux := (float32(x)*2 - fw) / fh * 10
	uy := (fh - float32(y)*2) / fh * 10

	// cell coordinates, one ring per 2x2 cell
	tx, ty := ux-1, uy-1
	cx, cy := tx, ty
	ix, iy := round(tx*0.5), round(ty*0.5)
	tx -= float32(ix) * 2
	ty -= float32(iy) * 2

	d := float32(math.Hypot(float64(tx), float64(ty)))
	col := smoothstep(0.9, 0.8, d)
	col *= smoothstep(0.65, 0.75, d)
	col += smoothstep(0.6, 0.5, d)

	// crop to a 4 by 8 block of cells
	col *= smoothstep(-5.01, -4.99, cx)
	col *= smoothstep(3.01, 2.99, cx)
	col *= smoothstep(7.01, 6.99, cy)
	col *= smoothstep(-9.01, -8.99, cy)

	// each row of cells is the binary expansion of its row number
	if !lit(1-ix, iy+12) {
		col = 0
	}
	if col > 1 {
		col = 1
	}
	return uint8(col * 255)
}

func lit(bit, row int) bool {
	if bit < 0 || bit > 31 {
		return false
	}
	return row>>uint(bit)&1 == 1
}

// Background renders the full image
func Background(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range row {
			row[x] = Shade(x, y, w, h)
		}
	}
	return img
}
