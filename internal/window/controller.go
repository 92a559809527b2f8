// Package window keeps the viewer window's input region and image layout in
// step with its size, and routes pointer gestures to the window manager.
package window

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/geometry"
	"github.com/1broseidon/showimg/internal/gesture"
	"github.com/1broseidon/showimg/internal/region"
)

var (
	ErrRatioAlreadySet = errors.New("aspect ratio already set")
	ErrInvalidRatio    = errors.New("aspect ratio must be a positive finite number")
)

// Surface is the display side of the window.
type Surface interface {
	// Allocate performs the platform's own layout bookkeeping for a new
	// size. It always runs before the controller's handling.
	Allocate(width, height int)
	// SetInputRegion replaces the installed input region.
	SetInputRegion(spec region.Spec)
	// SetChildAlign sets the alignment hints of the displayed image.
	SetChildAlign(halign, valign geometry.Align)
}

// Window is everything the controller needs from the platform window.
type Window interface {
	Surface
	gesture.Host
}

// Options configure a Controller. Mode and the suppression flags are fixed
// for the controller's lifetime.
type Options struct {
	Mode                         config.MouseBehavior
	DisableMaximizeOnDoubleClick bool
	DisableContextMenu           bool
	DragThreshold                float64
	DoubleClickMS                uint32
	DoubleClickDistance          float64
}

// OptionsFromConfig maps the startup configuration to controller options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Mode:                         cfg.MouseBehavior,
		DisableMaximizeOnDoubleClick: cfg.DisableMaximizeOnDoubleClick,
		DisableContextMenu:           cfg.DisableContextMenu,
		DragThreshold:                float64(cfg.DragThreshold),
		DoubleClickMS:                uint32(cfg.DoubleClickMS),
		DoubleClickDistance:          float64(cfg.DoubleClickDistance),
	}
}

// Controller owns the mouse behavior and aspect ratio of one window. All
// methods run on the UI event loop.
type Controller struct {
	win  Window
	mode config.MouseBehavior
	log  *slog.Logger

	ratio    float64
	ratioSet bool

	dispatcher *gesture.Dispatcher
	drag       *gesture.DragRecognizer // nil unless mode is drag
	click      *gesture.ClickRecognizer

	rect geometry.Rect
}

func New(win Window, opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		win:  win,
		mode: opts.Mode,
		log:  logger,
	}
	c.dispatcher = gesture.NewDispatcher(win, gesture.Options{
		DisableMaximizeOnDoubleClick: opts.DisableMaximizeOnDoubleClick,
		DisableContextMenu:           opts.DisableContextMenu,
	}, logger)

	if opts.Mode == config.MouseDrag {
		c.drag = gesture.NewDragRecognizer(gesture.PrimaryButton, opts.DragThreshold)
		c.drag.OnUpdate = c.dispatcher.OnDragUpdate
	}
	c.click = gesture.NewClickRecognizer(gesture.AnyButton, opts.DoubleClickMS, opts.DoubleClickDistance)
	c.click.OnPressed = c.dispatcher.OnClickPressed

	return c
}

func (c *Controller) Mode() config.MouseBehavior { return c.mode }

// SetAspectRatio records the image ratio. It may be called once, before
// the window is shown.
func (c *Controller) SetAspectRatio(ratio float64) error {
	if c.ratioSet {
		return ErrRatioAlreadySet
	}
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	c.ratio = ratio
	c.ratioSet = true
	return nil
}

// AspectRatio returns the ratio and whether it has been set.
func (c *Controller) AspectRatio() (float64, bool) { return c.ratio, c.ratioSet }

// ImageRect is the image rectangle from the last non-degenerate resize.
func (c *Controller) ImageRect() geometry.Rect { return c.rect }

// Resize handles a size notification from the platform.
func (c *Controller) Resize(width, height int) {
	c.win.Allocate(width, height)
	if !c.ratioSet {
		return
	}

	rect := geometry.ImageRect(width, height, c.ratio)
	if spec, ok := region.Compute(c.mode, rect); ok {
		c.win.SetInputRegion(spec)
	}
	if rect.Empty() {
		c.log.Debug("skipping layout for degenerate size", "width", width, "height", height)
		return
	}
	c.rect = rect

	halign, valign := geometry.OrientationOf(width, height, c.ratio).Alignment()
	c.win.SetChildAlign(halign, valign)
}

// DragRecognizer returns the drag recognizer, or nil when the mode does not
// wire one.
func (c *Controller) DragRecognizer() *gesture.DragRecognizer { return c.drag }

// ButtonPress feeds a raw pointer press to the recognizers.
func (c *Controller) ButtonPress(ev *gesture.Event) {
	if c.drag != nil {
		c.drag.Press(ev)
	}
	c.click.Press(ev)
}

// ButtonRelease feeds a raw pointer release to the recognizers.
func (c *Controller) ButtonRelease(ev *gesture.Event) {
	if c.drag != nil {
		c.drag.Release(ev)
	}
}

// PointerMotion feeds pointer motion. held reports whether the primary
// button is still down; a motion without it ends any drag whose release
// went elsewhere.
func (c *Controller) PointerMotion(ev *gesture.Event, held bool) {
	if c.drag == nil {
		return
	}
	if !held {
		c.drag.Cancel()
		return
	}
	c.drag.Motion(ev)
}

// MoveStarted tells the controller the window manager took over the
// pointer for an interactive move.
func (c *Controller) MoveStarted() {
	if c.drag != nil {
		c.drag.Cancel()
	}
	c.click.Reset()
}
