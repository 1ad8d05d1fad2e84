package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeyCtrlB:     "ctrl+b",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyCtrlF:     "ctrl+f",
	KeyCtrlL:     "ctrl+l",
	KeyCtrlP:     "ctrl+p",
	KeyCtrlR:     "ctrl+r",
	KeyCtrlU:     "ctrl+u",
	KeyCtrlZ:     "ctrl+z",
}

var keyAliases = map[string]Key{
	"return":   KeyEnter,
	"escape":   KeyEscape,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
	"del":      KeyDelete,
	"ins":      KeyInsert,
	"bs":       KeyBackspace,
	"ctrl-b":   KeyCtrlB,
	"ctrl-c":   KeyCtrlC,
	"ctrl-d":   KeyCtrlD,
	"ctrl-f":   KeyCtrlF,
	"ctrl-l":   KeyCtrlL,
	"ctrl-p":   KeyCtrlP,
	"ctrl-r":   KeyCtrlR,
	"ctrl-u":   KeyCtrlU,
	"ctrl-z":   KeyCtrlZ,
}

// String returns the canonical name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey converts a key name ("enter", "esc", "ctrl+u", "a") into an event.
// A single character parses as that rune.
func ParseKey(name string) (KeyEvent, error) {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) == 1 {
		r, _ := utf8.DecodeRuneInString(trimmed)
		return Rune(r), nil
	}
	lower := strings.ToLower(trimmed)
	if lower == "space" {
		return Rune(' '), nil
	}
	for k, n := range keyNames {
		if n == lower && k != KeyRune && k != KeyNone {
			return Press(k), nil
		}
	}
	if k, ok := keyAliases[lower]; ok {
		return Press(k), nil
	}
	return KeyEvent{}, fmt.Errorf("unknown key %q", name)
}

// ParseKeys parses a whitespace separated key script such as "h e l l o enter".
func ParseKeys(script string) ([]KeyEvent, error) {
	fields := strings.Fields(script)
	events := make([]KeyEvent, 0, len(fields))
	for _, f := range fields {
		ev, err := ParseKey(f)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
