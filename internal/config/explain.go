package config

import "fmt"

// Explain returns the effective value of a top-level key and where it came
// from.
func Explain(res *LoadResult, key string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if key == "" {
		return nil, Source{}, fmt.Errorf("key is empty")
	}

	value, err := lookupValue(res.Config, key)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[key]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, key string) (any, error) {
	switch key {
	case "file":
		return cfg.File, nil
	case "quit_accelerator":
		return cfg.QuitAccelerator, nil
	case "mouse_behavior":
		return cfg.MouseBehavior, nil
	case "disable_context_menu":
		return cfg.DisableContextMenu, nil
	case "disable_maximize_on_double_click":
		return cfg.DisableMaximizeOnDoubleClick, nil
	case "clipboard_mode":
		return cfg.ClipboardMode, nil
	case "title":
		return cfg.Title, nil
	case "background":
		return cfg.Background, nil
	case "drag_threshold":
		return cfg.DragThreshold, nil
	case "double_click_ms":
		return cfg.DoubleClickMS, nil
	case "double_click_distance":
		return cfg.DoubleClickDistance, nil
	case "log_level":
		return cfg.LogLevel, nil
	default:
		return nil, fmt.Errorf("unknown key: %s", key)
	}
}
