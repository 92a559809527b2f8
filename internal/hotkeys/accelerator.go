package hotkeys

import (
	"fmt"
	"strings"
	"unicode"
)

// modifierNames maps accepted modifier spellings to keybind names.
var modifierNames = map[string]string{
	"control": "control",
	"ctrl":    "control",
	"primary": "control",
	"shift":   "shift",
	"alt":     "mod1",
	"meta":    "mod1",
	"mod1":    "mod1",
	"mod2":    "mod2",
	"mod3":    "mod3",
	"super":   "mod4",
	"mod4":    "mod4",
	"mod5":    "mod5",
	"lock":    "lock",
}

// ParseAccelerator converts an accelerator to keybind syntax. Both the
// bracketed form ("<Control><Shift>w") and the dashed form ("Control-q",
// "ctrl+q") are accepted. Single letter keys are lowercased since the
// shift state is carried by the modifier list.
func ParseAccelerator(accel string) (string, error) {
	s := strings.TrimSpace(accel)
	if s == "" {
		return "", fmt.Errorf("empty accelerator")
	}

	var mods []string
	var key string
	if strings.HasPrefix(s, "<") {
		for strings.HasPrefix(s, "<") {
			end := strings.IndexByte(s, '>')
			if end < 0 {
				return "", fmt.Errorf("accelerator %q: unterminated modifier", accel)
			}
			mods = append(mods, s[1:end])
			s = s[end+1:]
		}
		key = strings.TrimSpace(s)
	} else {
		parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '+' })
		if len(parts) == 0 {
			return "", fmt.Errorf("accelerator %q: no key", accel)
		}
		mods = parts[:len(parts)-1]
		key = parts[len(parts)-1]
	}
	if key == "" {
		return "", fmt.Errorf("accelerator %q: no key", accel)
	}

	seen := make(map[string]bool)
	out := make([]string, 0, len(mods)+1)
	for _, m := range mods {
		name, ok := modifierNames[strings.ToLower(strings.TrimSpace(m))]
		if !ok {
			return "", fmt.Errorf("accelerator %q: unknown modifier %q", accel, m)
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	if r := []rune(key); len(r) == 1 && unicode.IsLetter(r[0]) {
		key = strings.ToLower(key)
	}
	return strings.Join(append(out, key), "-"), nil
}
