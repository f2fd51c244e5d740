package menu

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestResolveIndex(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := NewRegistry(nil, logger)

	tests := []struct {
		command string
		want    int
	}{
		{"1", 1},
		{"9", 9},
		{" 3 ", 3},
		{"0", InvalidIndex},
		{"10", InvalidIndex},
		{"-2", InvalidIndex},
		{"xterm -e top", InvalidIndex},
		{"", InvalidIndex},
	}

	for _, tt := range tests {
		if got := r.ResolveIndex(tt.command); got != tt.want {
			t.Errorf("ResolveIndex(%q) = %d, want %d", tt.command, got, tt.want)
		}
	}
}

func TestDefineAndIsDefined(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := NewRegistry(nil, logger)

	r.Define(2, "Apps")
	if !r.IsDefined(2) {
		t.Error("menu 2 should be defined")
	}
	if r.IsDefined(3) {
		t.Error("menu 3 should not be defined")
	}

	r.Define(0, "bad")
	r.Define(12, "bad")
	if len(hook.Entries) != 2 {
		t.Errorf("got %d diagnostics for out-of-range indexes, want 2", len(hook.Entries))
	}
}

func TestShow(t *testing.T) {
	var shown []int
	logger, _ := test.NewNullLogger()
	r := NewRegistry(func(index, x, y int, immediate bool) {
		shown = append(shown, index)
	}, logger)

	r.Define(1, "Apps")
	r.Show(1, -1, -1, true)
	r.Show(4, -1, -1, true)

	if len(shown) != 1 || shown[0] != 1 {
		t.Errorf("shown = %v, want [1]", shown)
	}
}

func TestClear(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := NewRegistry(nil, logger)

	r.Define(1, "Apps")
	r.Clear()

	if r.IsDefined(1) {
		t.Error("Clear should drop defined menus")
	}
}
