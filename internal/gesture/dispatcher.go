// Package gesture turns pointer gestures on the viewer window into window
// manager requests.
package gesture

import (
	"log/slog"
)

// Pointer buttons as reported by the window system.
const (
	AnyButton       uint = 0
	PrimaryButton   uint = 1
	MiddleButton    uint = 2
	SecondaryButton uint = 3
)

// Event is a snapshot of the pointer event being handled.
type Event struct {
	Time         uint32  // server timestamp in milliseconds
	X, Y         float64 // surface coordinates
	RootX, RootY float64 // the same point in root coordinates
	Button       uint
	Device       int
}

// Toplevel is the window manager side of the surface. All requests are
// fire-and-forget.
type Toplevel interface {
	BeginMove(device int, button uint, x, y float64, timestamp uint32)
	ToggleMaximized()
	ShowWindowMenu(ev *Event)
}

// Host gives access to the toplevel of the window the gestures belong to.
// ok is false while the window has no surface.
type Host interface {
	Toplevel() (t Toplevel, ok bool)
}

// DragGesture is the state a drag recognizer exposes during a callback.
type DragGesture interface {
	StartPoint() (x, y float64, ok bool)
	Device() (id int, ok bool)
	CurrentButton() uint
	CurrentEvent() *Event
}

// ClickGesture is the state a click recognizer exposes during a callback.
type ClickGesture interface {
	CurrentButton() uint
	CurrentEvent() *Event
}

// Options are the user suppression switches.
type Options struct {
	DisableMaximizeOnDoubleClick bool
	DisableContextMenu           bool
}

// Dispatcher decides which window manager request a gesture triggers.
// It holds a back-reference to the host and never owns it.
type Dispatcher struct {
	host Host
	opts Options
	log  *slog.Logger
}

func NewDispatcher(host Host, opts Options, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{host: host, opts: opts, log: logger}
}

// OnDragUpdate starts an interactive move from the drag start point plus
// offset. Missing gesture context aborts silently.
func (d *Dispatcher) OnDragUpdate(g DragGesture, offsetX, offsetY float64) {
	startX, startY, ok := g.StartPoint()
	if !ok {
		d.log.Debug("drag update without start point")
		return
	}
	toplevel, ok := d.host.Toplevel()
	if !ok {
		d.log.Debug("drag update without toplevel")
		return
	}
	device, ok := g.Device()
	if !ok {
		d.log.Debug("drag update without device")
		return
	}
	button := g.CurrentButton()
	ev := g.CurrentEvent()
	if ev == nil {
		d.log.Debug("drag update without current event")
		return
	}

	toplevel.BeginMove(device, button, startX+offsetX, startY+offsetY, ev.Time)
}

// OnClickPressed handles a press reported by the any-button click
// recognizer.
func (d *Dispatcher) OnClickPressed(g ClickGesture, nPress int, x, y float64) {
	toplevel, ok := d.host.Toplevel()
	if !ok {
		d.log.Debug("click without toplevel")
		return
	}
	ev := g.CurrentEvent()
	if ev == nil {
		d.log.Debug("click without current event")
		return
	}

	switch g.CurrentButton() {
	case PrimaryButton:
		if nPress == 2 && !d.opts.DisableMaximizeOnDoubleClick {
			toplevel.ToggleMaximized()
		}
	case SecondaryButton:
		if nPress == 1 && !d.opts.DisableContextMenu {
			toplevel.ShowWindowMenu(ev)
		}
	}
}
