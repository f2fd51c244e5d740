package x11

import "keybind/internal/input/key"

// Keysyms for the lock modifier keys, needed by the lock-mask resolver.
const (
	SymCapsLock key.Sym = 0xffe5
	SymNumLock  key.Sym = 0xff7f
)

// namedSyms maps key symbol names to keysym values. It covers the
// non-printable keys a binding configuration plausibly names; printable
// Latin-1 characters resolve positionally in StringToKeysym.
var namedSyms = map[string]key.Sym{
	"space":       0x0020,
	"BackSpace":   0xff08,
	"Tab":         0xff09,
	"Return":      0xff0d,
	"Pause":       0xff13,
	"Scroll_Lock": 0xff14,
	"Escape":      0xff1b,
	"Delete":      0xffff,
	"Home":        0xff50,
	"Left":        0xff51,
	"Up":          0xff52,
	"Right":       0xff53,
	"Down":        0xff54,
	"Prior":       0xff55,
	"Page_Up":     0xff55,
	"Next":        0xff56,
	"Page_Down":   0xff56,
	"End":         0xff57,
	"Begin":       0xff58,
	"Print":       0xff61,
	"Insert":      0xff63,
	"Menu":        0xff67,
	"Num_Lock":    0xff7f,
	"KP_Enter":    0xff8d,
	"KP_Multiply": 0xffaa,
	"KP_Add":      0xffab,
	"KP_Subtract": 0xffad,
	"KP_Divide":   0xffaf,
	"KP_0":        0xffb0,
	"KP_1":        0xffb1,
	"KP_2":        0xffb2,
	"KP_3":        0xffb3,
	"KP_4":        0xffb4,
	"KP_5":        0xffb5,
	"KP_6":        0xffb6,
	"KP_7":        0xffb7,
	"KP_8":        0xffb8,
	"KP_9":        0xffb9,
	"F1":          0xffbe,
	"F2":          0xffbf,
	"F3":          0xffc0,
	"F4":          0xffc1,
	"F5":          0xffc2,
	"F6":          0xffc3,
	"F7":          0xffc4,
	"F8":          0xffc5,
	"F9":          0xffc6,
	"F10":         0xffc7,
	"F11":         0xffc8,
	"F12":         0xffc9,
	"Shift_L":     0xffe1,
	"Shift_R":     0xffe2,
	"Control_L":   0xffe3,
	"Control_R":   0xffe4,
	"Caps_Lock":   0xffe5,
	"Meta_L":      0xffe7,
	"Meta_R":      0xffe8,
	"Alt_L":       0xffe9,
	"Alt_R":       0xffea,
	"Super_L":     0xffeb,
	"Super_R":     0xffec,
}

// StringToKeysym resolves a key symbol name the way XStringToKeysym
// does for the common cases: named special keys first, then single
// printable Latin-1 characters, which map directly to their code
// points. Unknown names yield key.NoSym.
func StringToKeysym(name string) key.Sym {
	if sym, ok := namedSyms[name]; ok {
		return sym
	}

	runes := []rune(name)
	if len(runes) == 1 && runes[0] >= 0x20 && runes[0] <= 0xff {
		return key.Sym(runes[0])
	}

	return key.NoSym
}
