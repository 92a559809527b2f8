package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BuildEffectiveConfig applies raw values on top of the defaults and
// normalizes enum spellings.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.File != nil {
		cfg.File = *raw.File
	}
	if raw.QuitAccelerator != nil {
		cfg.QuitAccelerator = *raw.QuitAccelerator
	}
	if raw.MouseBehavior != nil {
		mode, err := ParseMouseBehavior(string(*raw.MouseBehavior))
		if err != nil {
			return nil, &ValidationError{Path: "mouse_behavior", Err: err}
		}
		cfg.MouseBehavior = mode
	}
	if raw.DisableContextMenu != nil {
		cfg.DisableContextMenu = *raw.DisableContextMenu
	}
	if raw.DisableMaximizeOnDoubleClick != nil {
		cfg.DisableMaximizeOnDoubleClick = *raw.DisableMaximizeOnDoubleClick
	}
	if raw.ClipboardMode != nil {
		mode, err := ParseClipboardMode(string(*raw.ClipboardMode))
		if err != nil {
			return nil, &ValidationError{Path: "clipboard_mode", Err: err}
		}
		cfg.ClipboardMode = mode
	}
	if raw.Title != nil {
		cfg.Title = *raw.Title
	}
	if raw.Background != nil {
		cfg.Background = *raw.Background
	}
	if raw.DragThreshold != nil {
		cfg.DragThreshold = *raw.DragThreshold
	}
	if raw.DoubleClickMS != nil {
		cfg.DoubleClickMS = *raw.DoubleClickMS
	}
	if raw.DoubleClickDistance != nil {
		cfg.DoubleClickDistance = *raw.DoubleClickDistance
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
