package x11

import (
	"testing"

	"keybind/internal/input/key"
)

func TestStringToKeysym(t *testing.T) {
	tests := []struct {
		name string
		want key.Sym
	}{
		{"Return", 0xff0d},
		{"Escape", 0xff1b},
		{"F1", 0xffbe},
		{"F12", 0xffc9},
		{"Page_Up", 0xff55},
		{"Prior", 0xff55},
		{"Caps_Lock", SymCapsLock},
		{"Num_Lock", SymNumLock},
		{"space", 0x20},
		{"a", 'a'},
		{"Z", 'Z'},
		{"1", '1'},
		{"9", '9'},
		{"#", '#'},
	}

	for _, tt := range tests {
		if got := StringToKeysym(tt.name); got != tt.want {
			t.Errorf("StringToKeysym(%q) = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestStringToKeysymUnknown(t *testing.T) {
	for _, name := range []string{"", "NotAKey", "F13", "ReturnX"} {
		if got := StringToKeysym(name); got != key.NoSym {
			t.Errorf("StringToKeysym(%q) = %#x, want NoSym", name, got)
		}
	}
}
