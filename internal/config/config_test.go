package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.MouseBehavior != MouseDrag {
		t.Fatalf("expected default mouse behavior drag, got %q", cfg.MouseBehavior)
	}
	if cfg.ClipboardMode != ClipboardNo {
		t.Fatalf("expected default clipboard mode no, got %q", cfg.ClipboardMode)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	res, err := LoadFromPath(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.File != "" {
		t.Fatalf("expected no file recorded, got %q", res.File)
	}
	if res.Config.QuitAccelerator != DefaultQuitAccelerator {
		t.Fatalf("expected default quit accelerator, got %q", res.Config.QuitAccelerator)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "# empty\n")
	res, err := LoadFromPath(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.DragThreshold != DefaultDragThreshold {
		t.Fatalf("expected drag_threshold %d, got %d", DefaultDragThreshold, res.Config.DragThreshold)
	}
}

func TestLoadFromPath_FileValues(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"mouse_behavior: Passthrough",
		"disable_context_menu: true",
		"clipboard_mode: primary",
		"background: \"#202020\"",
		"",
	}, "\n"))

	res, err := LoadFromPath(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.MouseBehavior != MousePassthrough {
		t.Fatalf("expected passthrough, got %q", res.Config.MouseBehavior)
	}
	if !res.Config.DisableContextMenu {
		t.Fatalf("expected disable_context_menu true")
	}
	if res.Config.ClipboardMode != ClipboardPrimary {
		t.Fatalf("expected clipboard primary, got %q", res.Config.ClipboardMode)
	}

	_, src, err := Explain(res, "mouse_behavior")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if src.Kind != SourceFile || src.Line != 1 {
		t.Fatalf("expected file source at line 1, got %+v", src)
	}
}

func TestLoadFromPath_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "mouse_behavior: none\nquit_accelerator: Control-w\n")

	var o Overrides
	o.SetMouseBehavior(MouseDrag)
	o.SetDisableMaximizeOnDoubleClick(true)

	res, err := LoadFromPath(path, &o)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.MouseBehavior != MouseDrag {
		t.Fatalf("expected flag to win, got %q", res.Config.MouseBehavior)
	}
	if res.Config.QuitAccelerator != "Control-w" {
		t.Fatalf("expected file quit accelerator kept, got %q", res.Config.QuitAccelerator)
	}
	if !res.Config.DisableMaximizeOnDoubleClick {
		t.Fatalf("expected disable_maximize_on_double_click true")
	}

	_, src, err := Explain(res, "mouse_behavior")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if src.Kind != SourceFlag {
		t.Fatalf("expected flag source, got %+v", src)
	}
	_, src, err = Explain(res, "title")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if src.Kind != SourceDefault {
		t.Fatalf("expected default source, got %+v", src)
	}
}

func TestLoadFromPath_UnknownKeyFails(t *testing.T) {
	path := writeConfig(t, "mouse: drag\n")
	if _, err := LoadFromPath(path, nil); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestLoadFromPath_InvalidValueReportsLocation(t *testing.T) {
	path := writeConfig(t, "title: x\nmouse_behavior: wiggle\n")
	_, err := LoadFromPath(path, nil)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Path != "mouse_behavior" {
		t.Fatalf("expected path mouse_behavior, got %q", verr.Path)
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("expected line 2 in error, got %q", err.Error())
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"empty quit", func(c *Config) { c.QuitAccelerator = " " }, "quit_accelerator"},
		{"bad color", func(c *Config) { c.Background = "red" }, "background"},
		{"negative threshold", func(c *Config) { c.DragThreshold = -1 }, "drag_threshold"},
		{"zero double click", func(c *Config) { c.DoubleClickMS = 0 }, "double_click_ms"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad clipboard", func(c *Config) { c.ClipboardMode = "maybe" }, "clipboard_mode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Path != tc.path {
				t.Fatalf("expected path %q, got %q", tc.path, verr.Path)
			}
		})
	}
}

func TestQuitDisabled(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.QuitDisabled() {
		t.Fatalf("expected quit enabled by default")
	}
	cfg.QuitAccelerator = "None"
	if !cfg.QuitDisabled() {
		t.Fatalf("expected quit disabled for %q", cfg.QuitAccelerator)
	}
}

func TestMouseBehavior_FlagValue(t *testing.T) {
	var m MouseBehavior
	if err := m.Set("PASSTHROUGH"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if m != MousePassthrough {
		t.Fatalf("expected passthrough, got %q", m)
	}
	if err := m.Set("hover"); err == nil {
		t.Fatalf("expected error for unknown behavior")
	}
}

func TestParseColor(t *testing.T) {
	v, err := ParseColor("#1a2B3c")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v != 0x1a2b3c {
		t.Fatalf("expected 0x1a2b3c, got %#x", v)
	}
}
