package termimg

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// EncodeFallback renders img as a grid of half-block characters, one text
// row per two pixel rows, with truecolor foreground/background per cell.
// cellW and cellH are terminal cells; a nil image yields an empty string.
func EncodeFallback(img image.Image, cellW, cellH int) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	if cellW < 2 {
		cellW = 2
	}
	if cellH < 1 {
		cellH = 1
	}

	sample := func(x, y, w, h int) color.NRGBA {
		sx := b.Min.X + x*b.Dx()/w
		sy := b.Min.Y + y*b.Dy()/h
		return color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
	}

	pxH := cellH * 2
	var out strings.Builder
	for y := 0; y < cellH; y++ {
		for x := 0; x < cellW; x++ {
			top := sample(x, y*2, cellW, pxH)
			bottom := sample(x, y*2+1, cellW, pxH)
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		out.WriteString("\x1b[0m")
		if y < cellH-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
