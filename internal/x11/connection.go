package x11

import (
	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/pkg/errors"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	hasShape bool
	wake     xproto.Atom
}

// NewConnection connects to the display named by $DISPLAY and initializes
// the keyboard mapping and the SHAPE extension.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "connect to X server")
	}

	// Required before any key grab or keysym lookup.
	keybind.Initialize(xu)

	wake, err := xprop.Atm(xu, "_SHOWIMG_WAKE")
	if err != nil {
		xu.Conn().Close()
		return nil, errors.Wrap(err, "intern wake atom")
	}

	c := &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
		wake:  wake,
	}
	// Without SHAPE the window keeps its default input region.
	c.hasShape = shape.Init(xu.Conn()) == nil
	return c, nil
}

// HasShape reports whether input regions can be changed.
func (c *Connection) HasShape() bool {
	return c.hasShape
}

// EventLoop runs the main X11 event loop until Quit is called.
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Quit makes EventLoop return after the current event. It must run on the
// event loop goroutine; other goroutines use Wake.
func (c *Connection) Quit() {
	xevent.Quit(c.XUtil)
}

// Wake posts a wake client message to win. The loop sees it as a
// ClientMessage event on win, recognized by IsWake.
func (c *Connection) Wake(win xproto.Window) error {
	ev, err := xevent.NewClientMessage(32, win, c.wake)
	if err != nil {
		return errors.Wrap(err, "build wake message")
	}
	// An empty mask delivers to the window's creator, which is us.
	return xproto.SendEventChecked(c.XUtil.Conn(), false, win,
		xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// IsWake reports whether ev is a message posted by Wake.
func (c *Connection) IsWake(ev xevent.ClientMessageEvent) bool {
	return ev.ClientMessageEvent != nil && ev.Type == c.wake
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
