package x11

import (
	"fmt"

	"github.com/1broseidon/showimg/internal/geometry"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/pkg/errors"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Bounds returns the monitor area in root coordinates.
func (m Monitor) Bounds() geometry.Rect {
	return geometry.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, errors.Wrap(err, "randr init")
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "get screen resources")
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTC
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	return monitors, nil
}

// PointerWorkArea returns the usable area of the monitor under the pointer:
// the monitor intersected with the current desktop's _NET_WORKAREA. Without
// RandR the whole root window is used.
func (c *Connection) PointerWorkArea() geometry.Rect {
	area := c.rootBounds()
	if monitors, err := c.GetMonitors(); err == nil && len(monitors) > 0 {
		area = monitors[0].Bounds()
		if mon := findMonitorForPointer(c, monitors); mon != nil {
			area = mon.Bounds()
		}
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return area
	}
	desktop := 0
	if cur, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(cur) < len(workArea) {
		desktop = int(cur)
	}
	wa := workArea[desktop]
	clipped := intersect(area, geometry.Rect{
		X:      int(wa.X),
		Y:      int(wa.Y),
		Width:  int(wa.Width),
		Height: int(wa.Height),
	})
	// A work area on another monitor says nothing about this one.
	if clipped.Empty() {
		return area
	}
	return clipped
}

func (c *Connection) rootBounds() geometry.Rect {
	screen := c.XUtil.Screen()
	return geometry.Rect{Width: int(screen.WidthInPixels), Height: int(screen.HeightInPixels)}
}

func findMonitorForPointer(c *Connection, monitors []Monitor) *Monitor {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil
	}

	x := int(pointer.RootX)
	y := int(pointer.RootY)

	for i := range monitors {
		mon := &monitors[i]
		if x >= mon.X && x < mon.X+mon.Width && y >= mon.Y && y < mon.Y+mon.Height {
			return mon
		}
	}
	return nil
}

func intersect(a, b geometry.Rect) geometry.Rect {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.X+a.Width, b.X+b.Width)
	y2 := min(a.Y+a.Height, b.Y+b.Height)
	if x2 <= x1 || y2 <= y1 {
		return geometry.Rect{}
	}
	return geometry.Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
