// Package platform realizes the viewer window on the host window system.
package platform

import (
	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/gesture"
	"github.com/1broseidon/showimg/internal/window"
)

// Viewer is a top-level window showing one image.
type Viewer interface {
	// Show maps the window.
	Show()
	// Run processes window events until Quit is called or the window is
	// closed.
	Run()
	Quit()
	// Close releases the window. The display connection stays open.
	Close()
}

// Options configure a viewer window.
type Options struct {
	Title           string
	Background      uint32 // 0xRRGGBB
	QuitAccelerator string // keybind or bracketed syntax, "none" to disable
	Window          window.Options
}

// OptionsFromConfig builds viewer options from the effective configuration.
// cfg must have passed Validate.
func OptionsFromConfig(cfg *config.Config, title string) Options {
	bg, _ := config.ParseColor(cfg.Background)
	return Options{
		Title:           title,
		Background:      bg,
		QuitAccelerator: cfg.QuitAccelerator,
		Window:          window.OptionsFromConfig(cfg),
	}
}

// pointer holds the raw coordinates of an X pointer event.
type pointer struct {
	time         uint32
	x, y         int16 // event window
	rootX, rootY int16
	button       uint
}

// toEvent converts raw pointer data into a gesture event from the core
// pointer.
func (p pointer) toEvent() *gesture.Event {
	return &gesture.Event{
		Time:   p.time,
		X:      float64(p.x),
		Y:      float64(p.y),
		RootX:  float64(p.rootX),
		RootY:  float64(p.rootY),
		Button: p.button,
		Device: gesture.CorePointer,
	}
}

// origin is the root position of the window's (0, 0).
func (p pointer) origin() (x, y float64) {
	return float64(p.rootX) - float64(p.x), float64(p.rootY) - float64(p.y)
}
