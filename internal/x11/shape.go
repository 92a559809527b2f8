package x11

import (
	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// ErrNoShape is returned when the server lacks the SHAPE extension.
var ErrNoShape = errors.New("SHAPE extension not available")

// SetInputRects replaces the input region of a window with rects. An empty
// slice makes the window transparent to pointer input.
func (c *Connection) SetInputRects(windowID xproto.Window, rects []xproto.Rectangle) error {
	if !c.hasShape {
		return ErrNoShape
	}
	err := shape.RectanglesChecked(c.XUtil.Conn(), shape.SoSet, shape.SkInput,
		xproto.ClipOrderingUnsorted, windowID, 0, 0, rects).Check()
	return errors.Wrap(err, "set input shape")
}
