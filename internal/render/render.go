// Package render composes the viewer frame: the background plus the image
// scaled into its placement.
package render

import (
	"image"
	"image/color"

	"github.com/1broseidon/showimg/internal/geometry"
	"golang.org/x/image/draw"
)

// Placement positions an image of imgW×imgH inside a width×height area.
// The image rectangle is the aspect fit of the area; a Fill hint then
// stretches its axis to the full extent.
func Placement(width, height, imgW, imgH int, halign, valign geometry.Align) geometry.Rect {
	if imgW <= 0 || imgH <= 0 {
		return geometry.Rect{}
	}
	r := geometry.ImageRect(width, height, float64(imgW)/float64(imgH))
	if r.Empty() {
		return r
	}
	if halign == geometry.AlignFill {
		r.X, r.Width = 0, width
	}
	if valign == geometry.AlignFill {
		r.Y, r.Height = 0, height
	}
	return r
}

// Frame renders src into a new width×height RGBA image: bg everywhere, the
// image scaled into rect.
func Frame(src image.Image, width, height int, rect geometry.Rect, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, maxInt(width, 0), maxInt(height, 0)))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	if src == nil || rect.Empty() {
		return dst
	}

	target := image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height).Intersect(dst.Bounds())
	if target.Empty() {
		return dst
	}
	scalerFor(src.Bounds(), target).Scale(dst, target, src, src.Bounds(), draw.Over, nil)
	return dst
}

// scalerFor picks a higher quality kernel when shrinking, where aliasing is
// visible, and a cheaper one when enlarging.
func scalerFor(src, dst image.Rectangle) draw.Scaler {
	if dst.Dx() < src.Dx() || dst.Dy() < src.Dy() {
		return draw.CatmullRom
	}
	return draw.ApproxBiLinear
}

// RGB converts 0xRRGGBB into an opaque color.
func RGB(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
