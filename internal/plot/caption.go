package plot

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawCaption draws lines of text in a boxed block near the top-right corner.
func drawCaption(img image.Image, lines []string) image.Image {
	if img == nil || len(lines) == 0 {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 32, G: 32, B: 32, A: 255}), Face: face}

	tw := 0
	for _, l := range lines {
		if w := dr.MeasureString(l).Ceil(); w > tw {
			tw = w
		}
	}
	if tw == 0 {
		return img
	}

	pad := 6
	lineHeight := face.Metrics().Height.Ceil()
	x := b.Max.X - tw - pad - 24
	if x < b.Min.X+pad {
		x = b.Min.X + pad
	}
	y := b.Min.Y + 48

	bg := image.NewUniform(color.RGBA{R: 245, G: 245, B: 245, A: 220})
	rect := image.Rect(x-pad, y-pad, x+tw+pad, y+len(lines)*lineHeight+pad)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + ascent + i*lineHeight)}
		dr.DrawString(l)
	}
	return rgba
}
