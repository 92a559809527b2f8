// Package hotkeys binds keyboard accelerators on the viewer window.
package hotkeys

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Handler manages the keyboard shortcuts of one window. Keys are only
// delivered while the window has focus; nothing is grabbed globally.
type Handler struct {
	xu  *xgbutil.XUtil
	win xproto.Window
}

var ignoreModsOnce sync.Once

// NewHandler creates a hotkey handler for win. keybind must already be
// initialized on xu.
func NewHandler(xu *xgbutil.XUtil, win xproto.Window) *Handler {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})
	return &Handler{xu: xu, win: win}
}

// RegisterQuit binds accel to callback. "none" (any case) binds nothing.
func (h *Handler) RegisterQuit(accel string, callback func()) error {
	if strings.EqualFold(strings.TrimSpace(accel), "none") {
		return nil
	}
	seq, err := ParseAccelerator(accel)
	if err != nil {
		return err
	}
	if err := h.RegisterFunc(seq, callback); err != nil {
		return fmt.Errorf("failed to register quit accelerator %q: %w", accel, err)
	}
	return nil
}

// RegisterFunc registers an arbitrary key callback. keySequence uses the
// keybind syntax, e.g. "Control-q".
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.win, keySequence, false)
}

// Detach removes every binding on the window.
func (h *Handler) Detach() {
	keybind.Detach(h.xu, h.win)
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
