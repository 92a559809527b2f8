package config

// RawConfig mirrors Config with optional fields so that a file or the
// command line only overrides what it actually sets.
type RawConfig struct {
	File                         *string        `yaml:"file"`
	QuitAccelerator              *string        `yaml:"quit_accelerator"`
	MouseBehavior                *MouseBehavior `yaml:"mouse_behavior"`
	DisableContextMenu           *bool          `yaml:"disable_context_menu"`
	DisableMaximizeOnDoubleClick *bool          `yaml:"disable_maximize_on_double_click"`
	ClipboardMode                *ClipboardMode `yaml:"clipboard_mode"`
	Title                        *string        `yaml:"title"`
	Background                   *string        `yaml:"background"`
	DragThreshold                *int           `yaml:"drag_threshold"`
	DoubleClickMS                *int           `yaml:"double_click_ms"`
	DoubleClickDistance          *int           `yaml:"double_click_distance"`
	LogLevel                     *string        `yaml:"log_level"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c
	if overlay.File != nil {
		out.File = overlay.File
	}
	if overlay.QuitAccelerator != nil {
		out.QuitAccelerator = overlay.QuitAccelerator
	}
	if overlay.MouseBehavior != nil {
		out.MouseBehavior = overlay.MouseBehavior
	}
	if overlay.DisableContextMenu != nil {
		out.DisableContextMenu = overlay.DisableContextMenu
	}
	if overlay.DisableMaximizeOnDoubleClick != nil {
		out.DisableMaximizeOnDoubleClick = overlay.DisableMaximizeOnDoubleClick
	}
	if overlay.ClipboardMode != nil {
		out.ClipboardMode = overlay.ClipboardMode
	}
	if overlay.Title != nil {
		out.Title = overlay.Title
	}
	if overlay.Background != nil {
		out.Background = overlay.Background
	}
	if overlay.DragThreshold != nil {
		out.DragThreshold = overlay.DragThreshold
	}
	if overlay.DoubleClickMS != nil {
		out.DoubleClickMS = overlay.DoubleClickMS
	}
	if overlay.DoubleClickDistance != nil {
		out.DoubleClickDistance = overlay.DoubleClickDistance
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	return out
}

// Overrides collects command-line values. Only fields marked as set are
// applied on top of the file configuration.
type Overrides struct {
	raw RawConfig
	set map[string]struct{}
}

func (o *Overrides) mark(key string) {
	if o.set == nil {
		o.set = make(map[string]struct{})
	}
	o.set[key] = struct{}{}
}

func (o *Overrides) SetFile(v string) { o.raw.File = &v; o.mark("file") }

func (o *Overrides) SetQuitAccelerator(v string) {
	o.raw.QuitAccelerator = &v
	o.mark("quit_accelerator")
}

func (o *Overrides) SetMouseBehavior(v MouseBehavior) {
	o.raw.MouseBehavior = &v
	o.mark("mouse_behavior")
}

func (o *Overrides) SetDisableContextMenu(v bool) {
	o.raw.DisableContextMenu = &v
	o.mark("disable_context_menu")
}

func (o *Overrides) SetDisableMaximizeOnDoubleClick(v bool) {
	o.raw.DisableMaximizeOnDoubleClick = &v
	o.mark("disable_maximize_on_double_click")
}

func (o *Overrides) SetClipboardMode(v ClipboardMode) {
	o.raw.ClipboardMode = &v
	o.mark("clipboard_mode")
}

func (o *Overrides) SetLogLevel(v string) { o.raw.LogLevel = &v; o.mark("log_level") }

func (o *Overrides) keys() []string {
	out := make([]string, 0, len(o.set))
	for k := range o.set {
		out = append(out, k)
	}
	return out
}
