package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/pkg/errors"
)

// EWMH client message constants.
const (
	moveResizeMove  = 8 // _NET_WM_MOVERESIZE_MOVE
	sourceNormalApp = 1
)

const viewerEventMasks = xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskButtonMotion |
	xproto.EventMaskKeyPress

// WindowOptions describes the initial state of a viewer window.
type WindowOptions struct {
	X, Y          int
	Width, Height int
	Title         string
	Background    uint32 // 0xRRGGBB
}

// CreateViewerWindow creates an unmapped, undecorated top-level window that
// reports exposure, structure, pointer button and key events.
func (c *Connection) CreateViewerWindow(opts WindowOptions) (*xwindow.Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil, errors.Wrap(err, "allocate window id")
	}
	err = win.CreateChecked(c.Root, opts.X, opts.Y, opts.Width, opts.Height,
		xproto.CwBackPixel|xproto.CwEventMask, opts.Background, viewerEventMasks)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}

	// The decoration hint is honored by most window managers; failures only
	// leave a title bar behind.
	_ = motif.WmHintsSet(c.XUtil, win.Id, &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: motif.DecorationNone,
	})
	_ = icccm.WmNormalHintsSet(c.XUtil, win.Id, &icccm.NormalHints{
		Flags:  icccm.SizeHintUSPosition | icccm.SizeHintUSSize,
		X:      opts.X,
		Y:      opts.Y,
		Width:  uint(opts.Width),
		Height: uint(opts.Height),
	})
	_ = icccm.WmClassSet(c.XUtil, win.Id, &icccm.WmClass{Instance: "showimg", Class: "Showimg"})
	_ = ewmh.WmWindowTypeSet(c.XUtil, win.Id, []string{"_NET_WM_WINDOW_TYPE_NORMAL"})

	if err := c.SetTitle(win.Id, opts.Title); err != nil {
		return nil, err
	}
	return win, nil
}

// SetTitle sets both the EWMH and the legacy window name.
func (c *Connection) SetTitle(windowID xproto.Window, title string) error {
	if err := ewmh.WmNameSet(c.XUtil, windowID, title); err != nil {
		return errors.Wrap(err, "set _NET_WM_NAME")
	}
	return icccm.WmNameSet(c.XUtil, windowID, title)
}

// BeginMove hands an interactive move of the window to the window manager.
// The pointer grab implied by the button press is released first so the
// window manager can take it over.
func (c *Connection) BeginMove(windowID xproto.Window, button uint, rootX, rootY int, timestamp uint32) error {
	xproto.UngrabPointer(c.XUtil.Conn(), xproto.Timestamp(timestamp))
	return ewmh.ClientEvent(c.XUtil, windowID, "_NET_WM_MOVERESIZE",
		rootX, rootY, moveResizeMove, int(button), sourceNormalApp)
}

// ToggleMaximized flips both maximized states at once.
func (c *Connection) ToggleMaximized(windowID xproto.Window) error {
	vert, err := xprop.Atm(c.XUtil, "_NET_WM_STATE_MAXIMIZED_VERT")
	if err != nil {
		return err
	}
	horz, err := xprop.Atm(c.XUtil, "_NET_WM_STATE_MAXIMIZED_HORZ")
	if err != nil {
		return err
	}
	return ewmh.ClientEvent(c.XUtil, windowID, "_NET_WM_STATE",
		ewmh.StateToggle, int(vert), int(horz), sourceNormalApp)
}

// ShowWindowMenu asks the window manager for its window menu at a root
// position. Window managers without _GTK_SHOW_WINDOW_MENU ignore it.
func (c *Connection) ShowWindowMenu(windowID xproto.Window, device, rootX, rootY int, timestamp uint32) error {
	xproto.UngrabPointer(c.XUtil.Conn(), xproto.Timestamp(timestamp))
	return ewmh.ClientEvent(c.XUtil, windowID, "_GTK_SHOW_WINDOW_MENU", device, rootX, rootY)
}
