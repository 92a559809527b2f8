package geometry

import "math"

// Rect describes an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Orientation tells which surface dimension the image fills.
type Orientation int

const (
	// Wider means the surface is relatively wider than the image (or equal):
	// the image fills the height and is centered horizontally.
	Wider Orientation = iota
	// Taller means the surface is relatively taller than the image:
	// the image fills the width and is centered vertically.
	Taller
)

func (o Orientation) String() string {
	switch o {
	case Wider:
		return "wider"
	case Taller:
		return "taller"
	default:
		return "unknown"
	}
}

// Align is a layout alignment hint for the displayed image.
type Align int

const (
	AlignFill Align = iota
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "fill"
}

// OrientationOf classifies a surface against the image aspect ratio.
// Ties resolve to Wider.
func OrientationOf(surfaceW, surfaceH int, ratio float64) Orientation {
	if float64(surfaceW)/float64(surfaceH) >= ratio {
		return Wider
	}
	return Taller
}

// Alignment returns the (horizontal, vertical) hints for an orientation.
func (o Orientation) Alignment() (halign, valign Align) {
	if o == Wider {
		return AlignCenter, AlignFill
	}
	return AlignFill, AlignCenter
}

// ImageRect returns the largest rectangle with the given aspect ratio that
// fits the surface, centered. Degenerate input yields an empty Rect.
func ImageRect(surfaceW, surfaceH int, ratio float64) Rect {
	if surfaceW <= 0 || surfaceH <= 0 || !(ratio > 0) || math.IsInf(ratio, 0) {
		return Rect{}
	}

	if OrientationOf(surfaceW, surfaceH, ratio) == Wider {
		width := clamp(int(math.Round(float64(surfaceH)*ratio)), surfaceW)
		return Rect{
			X:      (surfaceW - width) / 2,
			Y:      0,
			Width:  width,
			Height: surfaceH,
		}
	}

	height := clamp(int(math.Round(float64(surfaceW)/ratio)), surfaceH)
	return Rect{
		X:      0,
		Y:      (surfaceH - height) / 2,
		Width:  surfaceW,
		Height: height,
	}
}

// clamp keeps a rounded extent within the surface.
func clamp(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

// FitWithin places a w×h image inside bounds: at natural size when it fits,
// otherwise scaled down keeping its aspect ratio. The result is centered in
// bounds and expressed in the same coordinate space.
func FitWithin(bounds Rect, w, h int) Rect {
	if bounds.Empty() || w <= 0 || h <= 0 {
		return Rect{}
	}
	if w <= bounds.Width && h <= bounds.Height {
		return Rect{
			X:      bounds.X + (bounds.Width-w)/2,
			Y:      bounds.Y + (bounds.Height-h)/2,
			Width:  w,
			Height: h,
		}
	}
	r := ImageRect(bounds.Width, bounds.Height, float64(w)/float64(h))
	r.X += bounds.X
	r.Y += bounds.Y
	return r
}
