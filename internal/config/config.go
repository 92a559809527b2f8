package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MouseBehavior defines how pointer input interacts with the viewer window.
type MouseBehavior string

const (
	MouseNone        MouseBehavior = "none"        // Region shrunk to the image, no drag-to-move.
	MouseDrag        MouseBehavior = "drag"        // Dragging the image moves the window.
	MousePassthrough MouseBehavior = "passthrough" // Window accepts no pointer input at all.
)

// ClipboardMode selects whether the image may come from an X selection.
type ClipboardMode string

const (
	ClipboardNo      ClipboardMode = "no"
	ClipboardPrimary ClipboardMode = "primary"
	ClipboardYes     ClipboardMode = "yes"
)

// QuitNone disables the quit accelerator.
const QuitNone = "none"

const (
	DefaultTitle               = "Show Img"
	DefaultQuitAccelerator     = "Control-q"
	DefaultBackground          = "#000000"
	DefaultDragThreshold       = 3
	DefaultDoubleClickMS       = 400
	DefaultDoubleClickDistance = 5
	DefaultLogLevel            = "info"
)

// Config holds the effective startup configuration.
type Config struct {
	File                         string        `yaml:"file,omitempty"`
	QuitAccelerator              string        `yaml:"quit_accelerator"`
	MouseBehavior                MouseBehavior `yaml:"mouse_behavior"`
	DisableContextMenu           bool          `yaml:"disable_context_menu"`
	DisableMaximizeOnDoubleClick bool          `yaml:"disable_maximize_on_double_click"`
	ClipboardMode                ClipboardMode `yaml:"clipboard_mode"`
	Title                        string        `yaml:"title"`
	Background                   string        `yaml:"background"`
	DragThreshold                int           `yaml:"drag_threshold"`        // pixels before a press becomes a drag
	DoubleClickMS                int           `yaml:"double_click_ms"`       // max delay between presses of a multi-press
	DoubleClickDistance          int           `yaml:"double_click_distance"` // max pointer travel between presses
	LogLevel                     string        `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		QuitAccelerator:     DefaultQuitAccelerator,
		MouseBehavior:       MouseDrag,
		ClipboardMode:       ClipboardNo,
		Title:               DefaultTitle,
		Background:          DefaultBackground,
		DragThreshold:       DefaultDragThreshold,
		DoubleClickMS:       DefaultDoubleClickMS,
		DoubleClickDistance: DefaultDoubleClickDistance,
		LogLevel:            DefaultLogLevel,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := ParseMouseBehavior(string(c.MouseBehavior)); err != nil {
		return &ValidationError{Path: "mouse_behavior", Err: err}
	}
	if _, err := ParseClipboardMode(string(c.ClipboardMode)); err != nil {
		return &ValidationError{Path: "clipboard_mode", Err: err}
	}
	if strings.TrimSpace(c.QuitAccelerator) == "" {
		return &ValidationError{Path: "quit_accelerator", Err: fmt.Errorf("must not be empty (use %q to disable)", QuitNone)}
	}
	if _, err := ParseColor(c.Background); err != nil {
		return &ValidationError{Path: "background", Err: err}
	}
	if c.DragThreshold < 0 {
		return &ValidationError{Path: "drag_threshold", Err: fmt.Errorf("must be >= 0, got %d", c.DragThreshold)}
	}
	if c.DoubleClickMS <= 0 {
		return &ValidationError{Path: "double_click_ms", Err: fmt.Errorf("must be > 0, got %d", c.DoubleClickMS)}
	}
	if c.DoubleClickDistance < 0 {
		return &ValidationError{Path: "double_click_distance", Err: fmt.Errorf("must be >= 0, got %d", c.DoubleClickDistance)}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// QuitDisabled reports whether the quit accelerator is turned off.
func (c *Config) QuitDisabled() bool {
	return strings.EqualFold(strings.TrimSpace(c.QuitAccelerator), QuitNone)
}

// SlogLevel returns the configured level; Validate guarantees it parses.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func ParseMouseBehavior(s string) (MouseBehavior, error) {
	switch MouseBehavior(strings.ToLower(strings.TrimSpace(s))) {
	case MouseNone:
		return MouseNone, nil
	case MouseDrag:
		return MouseDrag, nil
	case MousePassthrough:
		return MousePassthrough, nil
	}
	return "", fmt.Errorf("unknown mouse behavior %q (want none, drag or passthrough)", s)
}

// Set implements flag.Value.
func (m *MouseBehavior) Set(s string) error {
	v, err := ParseMouseBehavior(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m MouseBehavior) String() string { return string(m) }

func ParseClipboardMode(s string) (ClipboardMode, error) {
	switch ClipboardMode(strings.ToLower(strings.TrimSpace(s))) {
	case ClipboardNo:
		return ClipboardNo, nil
	case ClipboardPrimary:
		return ClipboardPrimary, nil
	case ClipboardYes:
		return ClipboardYes, nil
	}
	return "", fmt.Errorf("unknown clipboard mode %q (want no, primary or yes)", s)
}

// Set implements flag.Value.
func (m *ClipboardMode) Set(s string) error {
	v, err := ParseClipboardMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m ClipboardMode) String() string { return string(m) }

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// ParseColor parses "#rrggbb" into 0xRRGGBB.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	return uint32(v), nil
}
