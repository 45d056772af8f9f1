package rotozoom

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage copies img into a new RGBA buffer. The buffer origin is
// img.Bounds().Min. Non-RGBA images are converted with draw.Src.
func FromImage(img image.Image) *Buffer[color.RGBA] {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
		b = rgba.Rect
	}

	buf, _ := NewBuffer[color.RGBA](b.Dx(), b.Dy())
	for y := range buf.height {
		off := rgba.PixOffset(b.Min.X, b.Min.Y+y)
		src := rgba.Pix[off : off+4*buf.width]
		row := buf.Row(y)
		for x := range row {
			p := src[4*x : 4*x+4 : 4*x+4]
			row[x] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
		}
	}
	return buf
}

// ToImage copies b into a new *image.RGBA anchored at the origin.
func ToImage(b *Buffer[color.RGBA]) *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for y := range b.height {
		dst := img.Pix[y*img.Stride:]
		for x, c := range b.Row(y) {
			dst[4*x] = c.R
			dst[4*x+1] = c.G
			dst[4*x+2] = c.B
			dst[4*x+3] = c.A
		}
	}
	return img
}
