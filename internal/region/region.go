// Package region derives the pointer input region of the viewer window from
// the mouse behavior and the visible image rectangle.
package region

import (
	"fmt"

	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/geometry"
)

// Kind is the shape of an installed input region. Before the first install
// a surface accepts input everywhere.
type Kind int

const (
	// Rect accepts input only inside a single rectangle.
	Rect Kind = iota
	// Empty accepts no input anywhere.
	Empty
)

func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Spec is the input region to install on a surface.
type Spec struct {
	Kind Kind
	Rect geometry.Rect // set only for Kind == Rect
}

func None() Spec { return Spec{Kind: Empty} }

func Rectangle(r geometry.Rect) Spec { return Spec{Kind: Rect, Rect: r} }

func (s Spec) String() string {
	if s.Kind == Rect {
		return fmt.Sprintf("rect(%d,%d %dx%d)", s.Rect.X, s.Rect.Y, s.Rect.Width, s.Rect.Height)
	}
	return s.Kind.String()
}

// Compute returns the region for mode and the current image rectangle. The
// boolean is false when no update should be installed at all: an empty
// image rectangle in None/Drag mode keeps the previous region rather than
// making the window briefly click-through.
func Compute(mode config.MouseBehavior, imageRect geometry.Rect) (Spec, bool) {
	if mode == config.MousePassthrough {
		return None(), true
	}
	if imageRect.Empty() {
		return Spec{}, false
	}
	return Rectangle(imageRect), true
}
