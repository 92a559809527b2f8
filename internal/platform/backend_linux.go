//go:build linux

package platform

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/1broseidon/showimg/internal/geometry"
	"github.com/1broseidon/showimg/internal/gesture"
	"github.com/1broseidon/showimg/internal/hotkeys"
	"github.com/1broseidon/showimg/internal/imageload"
	"github.com/1broseidon/showimg/internal/region"
	"github.com/1broseidon/showimg/internal/render"
	"github.com/1broseidon/showimg/internal/window"
	"github.com/1broseidon/showimg/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// LinuxViewer shows an image in an undecorated X11 window. It is the
// surface and the toplevel of its window controller.
type LinuxViewer struct {
	conn *x11.Connection
	win  *xwindow.Window
	ctrl *window.Controller
	keys *hotkeys.Handler
	img  *imageload.Image
	bg   color.RGBA
	log  *slog.Logger

	width, height  int
	halign, valign geometry.Align
	// Root position of the window origin, refreshed on every pointer event.
	originX, originY float64

	frame   *xgraphics.Image
	noShape bool
}

var _ Viewer = (*LinuxViewer)(nil)
var _ window.Window = (*LinuxViewer)(nil)

// NewLinuxViewer creates the (unmapped) viewer window for img, sized to
// fit the work area of the monitor under the pointer.
func NewLinuxViewer(conn *x11.Connection, img *imageload.Image, opts Options, logger *slog.Logger) (*LinuxViewer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bounds := geometry.FitWithin(conn.PointerWorkArea(), img.Width, img.Height)
	if bounds.Empty() {
		bounds = geometry.Rect{Width: img.Width, Height: img.Height}
	}

	win, err := conn.CreateViewerWindow(x11.WindowOptions{
		X:          bounds.X,
		Y:          bounds.Y,
		Width:      bounds.Width,
		Height:     bounds.Height,
		Title:      opts.Title,
		Background: opts.Background,
	})
	if err != nil {
		return nil, err
	}

	v := &LinuxViewer{
		conn:    conn,
		win:     win,
		img:     img,
		bg:      render.RGB(opts.Background),
		log:     logger,
		originX: float64(bounds.X),
		originY: float64(bounds.Y),
	}
	if !conn.HasShape() {
		v.noShape = true
		logger.Warn("SHAPE extension missing; window accepts input everywhere")
	}
	v.ctrl = window.New(v, opts.Window, logger)
	if err := v.ctrl.SetAspectRatio(img.AspectRatio()); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to set aspect ratio: %w", err)
	}

	v.keys = hotkeys.NewHandler(conn.XUtil, win.Id)
	if err := v.keys.RegisterQuit(opts.QuitAccelerator, v.conn.Quit); err != nil {
		logger.Warn("quit accelerator not bound", "accelerator", opts.QuitAccelerator, "error", err)
	}
	v.connect()

	// ConfigureNotify repeats this once the window manager has placed us.
	v.ctrl.Resize(bounds.Width, bounds.Height)
	return v, nil
}

func (v *LinuxViewer) connect() {
	xu := v.conn.XUtil
	id := v.win.Id

	v.win.WMGracefulClose(func(*xwindow.Window) {
		v.conn.Quit()
	})

	xevent.ClientMessageFun(func(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		if v.conn.IsWake(ev) {
			v.conn.Quit()
		}
	}).Connect(xu, id)

	xevent.ConfigureNotifyFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		w, h := int(ev.Width), int(ev.Height)
		if w == v.width && h == v.height {
			return
		}
		v.ctrl.Resize(w, h)
	}).Connect(xu, id)

	xevent.ExposeFun(func(xu *xgbutil.XUtil, ev xevent.ExposeEvent) {
		// Only the last event of a series.
		if ev.Count != 0 {
			return
		}
		if v.frame != nil {
			v.frame.XPaint(id)
			return
		}
		v.paint()
	}).Connect(xu, id)

	xevent.ButtonPressFun(func(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		v.ctrl.ButtonPress(v.track(pointer{
			time: uint32(ev.Time), x: ev.EventX, y: ev.EventY,
			rootX: ev.RootX, rootY: ev.RootY, button: uint(ev.Detail),
		}))
	}).Connect(xu, id)

	xevent.ButtonReleaseFun(func(xu *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		v.ctrl.ButtonRelease(v.track(pointer{
			time: uint32(ev.Time), x: ev.EventX, y: ev.EventY,
			rootX: ev.RootX, rootY: ev.RootY, button: uint(ev.Detail),
		}))
	}).Connect(xu, id)

	xevent.MotionNotifyFun(func(xu *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		held := ev.State&xproto.KeyButMaskButton1 != 0
		v.ctrl.PointerMotion(v.track(pointer{
			time: uint32(ev.Time), x: ev.EventX, y: ev.EventY,
			rootX: ev.RootX, rootY: ev.RootY,
		}), held)
	}).Connect(xu, id)
}

func (v *LinuxViewer) track(p pointer) *gesture.Event {
	v.originX, v.originY = p.origin()
	return p.toEvent()
}

// Show maps the window.
func (v *LinuxViewer) Show() {
	v.win.Map()
	v.log.Info("Press Alt+Space to set window always on top")
}

// Run blocks in the X event loop.
func (v *LinuxViewer) Run() {
	v.conn.EventLoop()
}

// Quit asks the event loop to stop. It may be called from any goroutine:
// it only posts a message that the loop acts on.
func (v *LinuxViewer) Quit() {
	if err := v.conn.Wake(v.win.Id); err != nil {
		v.log.Warn("cannot post quit to event loop", "error", err)
	}
}

// Close detaches handlers and destroys the window.
func (v *LinuxViewer) Close() {
	v.keys.Detach()
	xevent.Detach(v.conn.XUtil, v.win.Id)
	if v.frame != nil {
		v.frame.Destroy()
		v.frame = nil
	}
	v.win.Destroy()
}

// Allocate records the surface size for the next repaint.
func (v *LinuxViewer) Allocate(width, height int) {
	v.width, v.height = width, height
}

// SetInputRegion installs spec as the window's input shape.
func (v *LinuxViewer) SetInputRegion(spec region.Spec) {
	if v.noShape {
		return
	}
	var err error
	switch spec.Kind {
	case region.Empty:
		err = v.conn.SetInputRects(v.win.Id, nil)
	case region.Rect:
		r := spec.Rect
		err = v.conn.SetInputRects(v.win.Id, []xproto.Rectangle{{
			X:      int16(r.X),
			Y:      int16(r.Y),
			Width:  uint16(r.Width),
			Height: uint16(r.Height),
		}})
	}
	if err != nil {
		v.log.Debug("set input region failed", "region", spec, "error", err)
	}
}

// SetChildAlign stores the image alignment and repaints.
func (v *LinuxViewer) SetChildAlign(h, va geometry.Align) {
	v.halign, v.valign = h, va
	v.paint()
}

// Toplevel returns the viewer itself while its window exists.
func (v *LinuxViewer) Toplevel() (gesture.Toplevel, bool) {
	if v.win == nil {
		return nil, false
	}
	return v, true
}

// BeginMove hands the pointer to the window manager for a move from the
// surface point (x, y).
func (v *LinuxViewer) BeginMove(device int, button uint, x, y float64, timestamp uint32) {
	rootX := int(math.Round(v.originX + x))
	rootY := int(math.Round(v.originY + y))
	if err := v.conn.BeginMove(v.win.Id, button, rootX, rootY, timestamp); err != nil {
		v.log.Debug("begin move failed", "error", err)
	}
	// The window manager owns the pointer from here on.
	v.ctrl.MoveStarted()
}

// ToggleMaximized flips the maximized state.
func (v *LinuxViewer) ToggleMaximized() {
	if err := v.conn.ToggleMaximized(v.win.Id); err != nil {
		v.log.Debug("toggle maximized failed", "error", err)
	}
}

// ShowWindowMenu opens the window manager menu at the event position.
func (v *LinuxViewer) ShowWindowMenu(ev *gesture.Event) {
	err := v.conn.ShowWindowMenu(v.win.Id, ev.Device,
		int(math.Round(ev.RootX)), int(math.Round(ev.RootY)), ev.Time)
	if err != nil {
		v.log.Debug("show window menu failed", "error", err)
	}
}

func (v *LinuxViewer) paint() {
	if v.width <= 0 || v.height <= 0 {
		return
	}
	rect := render.Placement(v.width, v.height, v.img.Width, v.img.Height, v.halign, v.valign)
	ximg := xgraphics.NewConvert(v.conn.XUtil, render.Frame(v.img.Image, v.width, v.height, rect, v.bg))
	if err := ximg.XSurfaceSet(v.win.Id); err != nil {
		v.log.Debug("create paint surface failed", "error", err)
		ximg.Destroy()
		return
	}
	ximg.XDraw()
	ximg.XPaint(v.win.Id)

	if v.frame != nil {
		v.frame.Destroy()
	}
	v.frame = ximg
}
