package myterm

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyCode identifies a key independent of modifiers.
type KeyCode int

const (
	KeyChar KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF
	KeyEscape
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu
)

// Mods is a bitmask of held modifier keys.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Mods) has(flag Mods) bool { return m&flag != 0 }

// Key is a single keystroke: a code, and for KeyChar the rune typed, and
// for KeyF the function-key number.
type Key struct {
	Code KeyCode
	Char rune
	Num  int
	Mods Mods
}

// CharKey builds a plain, unmodified character key.
func CharKey(c rune) Key { return Key{Code: KeyChar, Char: c} }

// CtrlKey builds a Ctrl-modified character key.
func CtrlKey(c rune) Key { return Key{Code: KeyChar, Char: c, Mods: ModCtrl} }

// AltKey builds an Alt-modified character key.
func AltKey(c rune) Key { return Key{Code: KeyChar, Char: c, Mods: ModAlt} }

// FKey builds a function key (1-12).
func FKey(n int) Key { return Key{Code: KeyF, Num: n} }

// Encode translates a Key into the byte sequence a terminal sends to the
// shell for that keystroke: control characters for Ctrl+letter, an ESC
// prefix for Alt, and CSI/SS3 sequences for navigation and function keys.
func (k Key) Encode() []byte {
	switch k.Code {
	case KeyChar:
		return encodeChar(k.Char, k.Mods)
	case KeyEnter:
		return []byte{'\r'}
	case KeyTab:
		return []byte{'\t'}
	case KeyBackspace:
		return []byte{127}
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyHome:
		if k.Mods.has(ModCtrl) {
			return []byte("\x1b[1;5H")
		}
		return []byte("\x1b[H")
	case KeyEnd:
		if k.Mods.has(ModCtrl) {
			return []byte("\x1b[1;5F")
		}
		return []byte("\x1b[F")
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyUp:
		return encodeArrow('A', k.Mods)
	case KeyDown:
		return encodeArrow('B', k.Mods)
	case KeyLeft:
		return encodeArrow('D', k.Mods)
	case KeyRight:
		return encodeArrow('C', k.Mods)
	case KeyF:
		return encodeFunction(k.Num)
	case KeyEscape:
		return []byte{27}
	default:
		return nil
	}
}

func encodeChar(c rune, mods Mods) []byte {
	if mods.has(ModCtrl) {
		lower := c
		if lower >= 'A' && lower <= 'Z' {
			lower = lower - 'A' + 'a'
		}
		switch {
		case lower >= 'a' && lower <= 'z':
			return []byte{byte(lower) - 'a' + 1}
		case lower == '@':
			return []byte{0}
		case lower == '[':
			return []byte{27}
		case lower == '\\':
			return []byte{28}
		case lower == ']':
			return []byte{29}
		case lower == '^':
			return []byte{30}
		case lower == '_':
			return []byte{31}
		case lower == '?':
			return []byte{127}
		default:
			return []byte(string(c))
		}
	}
	if mods.has(ModAlt) {
		out := []byte{27}
		return append(out, []byte(string(c))...)
	}
	return []byte(string(c))
}

func encodeArrow(final byte, mods Mods) []byte {
	switch {
	case mods.has(ModCtrl):
		return []byte(fmt.Sprintf("\x1b[1;5%c", final))
	case mods.has(ModShift):
		return []byte(fmt.Sprintf("\x1b[1;2%c", final))
	default:
		return []byte(fmt.Sprintf("\x1b[%c", final))
	}
}

func encodeFunction(n int) []byte {
	switch n {
	case 1:
		return []byte("\x1bOP")
	case 2:
		return []byte("\x1bOQ")
	case 3:
		return []byte("\x1bOR")
	case 4:
		return []byte("\x1bOS")
	case 5:
		return []byte("\x1b[15~")
	case 6:
		return []byte("\x1b[17~")
	case 7:
		return []byte("\x1b[18~")
	case 8:
		return []byte("\x1b[19~")
	case 9:
		return []byte("\x1b[20~")
	case 10:
		return []byte("\x1b[21~")
	case 11:
		return []byte("\x1b[23~")
	case 12:
		return []byte("\x1b[24~")
	default:
		return nil
	}
}

var keyNames = map[string]KeyCode{
	"enter":      KeyEnter,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"delete":     KeyDelete,
	"insert":     KeyInsert,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"pagedown":   KeyPageDown,
	"up":         KeyUp,
	"down":       KeyDown,
	"left":       KeyLeft,
	"right":      KeyRight,
	"escape":     KeyEscape,
	"capslock":   KeyCapsLock,
	"scrolllock": KeyScrollLock,
	"numlock":    KeyNumLock,
	"printscreen": KeyPrintScreen,
	"pause":      KeyPause,
	"menu":       KeyMenu,
}

// ParseKeyBinding parses a "+"-joined binding string like "Ctrl+Alt+k" or
// "Ctrl+F5" into a Key. Modifier names and the base key name are matched
// case-insensitively.
func ParseKeyBinding(s string) (Key, error) {
	parts := strings.Split(s, "+")
	var mods Mods
	var code *KeyCode
	var char rune
	var num int
	hasCode := false

	for _, part := range parts {
		lower := strings.ToLower(part)
		switch lower {
		case "ctrl":
			mods |= ModCtrl
			continue
		case "alt":
			mods |= ModAlt
			continue
		case "shift":
			mods |= ModShift
			continue
		case "super", "cmd":
			mods |= ModSuper
			continue
		}

		if kc, ok := keyNames[lower]; ok {
			c := kc
			code = &c
			hasCode = true
			continue
		}
		if len(lower) > 1 && lower[0] == 'f' {
			if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 12 {
				c := KeyF
				code = &c
				num = n
				hasCode = true
				continue
			}
		}
		if len([]rune(part)) == 1 {
			c := KeyChar
			code = &c
			char = []rune(part)[0]
			hasCode = true
			continue
		}
		return Key{}, fmt.Errorf("myterm: unknown key: %s", part)
	}

	if !hasCode {
		return Key{}, fmt.Errorf("myterm: no key code found in: %s", s)
	}
	return Key{Code: *code, Char: char, Num: num, Mods: mods}, nil
}

// String renders a Key back to its "+"-joined binding form, the inverse
// of ParseKeyBinding for any key producible by it.
func (k Key) String() string {
	var parts []string
	if k.Mods.has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if k.Mods.has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if k.Mods.has(ModShift) {
		parts = append(parts, "Shift")
	}
	if k.Mods.has(ModSuper) {
		parts = append(parts, "Super")
	}

	var name string
	switch k.Code {
	case KeyChar:
		name = string(k.Char)
	case KeyF:
		name = fmt.Sprintf("F%d", k.Num)
	default:
		for n, kc := range keyNames {
			if kc == k.Code {
				name = capitalize(n)
				break
			}
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, "+")
}

func capitalize(s string) string {
	switch s {
	case "pageup":
		return "PageUp"
	case "pagedown":
		return "PageDown"
	case "capslock":
		return "CapsLock"
	case "scrolllock":
		return "ScrollLock"
	case "numlock":
		return "NumLock"
	case "printscreen":
		return "PrintScreen"
	}
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
