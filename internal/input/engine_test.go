package input

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"keybind/internal/input/action"
	"keybind/internal/input/binding"
	"keybind/internal/input/key"
	"keybind/internal/x11"
)

// fakeConn is a canned server connection: a small keyboard with
// Caps Lock on the Lock bit and Num Lock on Mod2, Latin-1 symbol
// resolution, and recorded grab traffic.
type fakeConn struct {
	grabs   []key.Code
	masks   []key.Modifier
	ungrabs []x11.Window

	// returnCode overrides the keycode Return resolves to, for
	// simulating a keyboard remap.
	returnCode key.Code
}

func (f *fakeConn) NameToSym(name string) key.Sym {
	return x11.StringToKeysym(name)
}

func (f *fakeConn) SymToCode(sym key.Sym) key.Code {
	switch sym {
	case x11.SymCapsLock:
		return 66
	case x11.SymNumLock:
		return 77
	case 0xff0d: // Return
		if f.returnCode != 0 {
			return f.returnCode
		}
		return 36
	}
	if sym >= '1' && sym <= '9' {
		return key.Code(10 + sym - '1')
	}
	if sym >= 'a' && sym <= 'z' {
		return key.Code(100 + sym - 'a')
	}
	return 0
}

func (f *fakeConn) ModifierMapping() ([][]key.Code, error) {
	rows := make([][]key.Code, 8)
	rows[1] = []key.Code{66}
	rows[4] = []key.Code{77}
	return rows, nil
}

func (f *fakeConn) GrabKey(code key.Code, mods key.Modifier, win x11.Window) {
	f.grabs = append(f.grabs, code)
	f.masks = append(f.masks, mods)
}

func (f *fakeConn) UngrabAll(win x11.Window) {
	f.ungrabs = append(f.ungrabs, win)
}

func (f *fakeConn) RootWindow() x11.Window {
	return 1
}

type fakeRunner struct {
	commands []string
}

func (f *fakeRunner) Run(command string) {
	f.commands = append(f.commands, command)
}

type fakeMenus struct {
	defined map[int]bool
	shown   []int
}

func (f *fakeMenus) ResolveIndex(command string) int {
	if len(command) == 1 && command[0] >= '1' && command[0] <= '9' {
		return int(command[0] - '0')
	}
	return -1
}

func (f *fakeMenus) IsDefined(index int) bool {
	return f.defined[index]
}

func (f *fakeMenus) Show(index, x, y int, immediate bool) {
	f.shown = append(f.shown, index)
}

type fakeWindows struct {
	trays   []x11.Window
	clients []x11.Window
}

func (f *fakeWindows) TrayWindows() []x11.Window   { return f.trays }
func (f *fakeWindows) ClientWindows() []x11.Window { return f.clients }

type engineFixture struct {
	engine  *Engine
	conn    *fakeConn
	runner  *fakeRunner
	menus   *fakeMenus
	windows *fakeWindows
	hook    *test.Hook
}

func newFixture() *engineFixture {
	logger, hook := test.NewNullLogger()
	conn := &fakeConn{}
	runner := &fakeRunner{}
	menus := &fakeMenus{defined: map[int]bool{}}
	windows := &fakeWindows{}
	return &engineFixture{
		engine:  New(conn, windows, runner, menus, logger),
		conn:    conn,
		runner:  runner,
		menus:   menus,
		windows: windows,
		hook:    hook,
	}
}

// Register an exec binding for Control+Mod1+Return, start up, then
// dispatch an event that also has the Num Lock bit engaged. Exactly
// one command run results.
func TestDispatchStripsNumLock(t *testing.T) {
	fx := newFixture()
	fx.engine.RegisterKeyBinding(action.Exec, "C1", "Return", "", "xterm")
	fx.engine.Startup()

	if fx.engine.LockMask() != key.ModLock|key.ModMod2 {
		t.Fatalf("lock mask = %v", fx.engine.LockMask())
	}

	state := key.ModControl | key.ModMod1 | key.ModMod2
	fx.engine.RunKeyCommand(binding.ContextRoot, state, 36)

	if len(fx.runner.commands) != 1 || fx.runner.commands[0] != "xterm" {
		t.Fatalf("commands = %v, want exactly one xterm run", fx.runner.commands)
	}
}

// A "#" stroke expands to nine bindings; an event on the key for digit
// 3 yields an action carrying parameter 3.
func TestDispatchExpandedDesktopBinding(t *testing.T) {
	fx := newFixture()
	fx.engine.RegisterKeyBinding(action.Desktop, "", "#", "", "")
	fx.engine.Startup()

	if fx.engine.Bindings() != 9 {
		t.Fatalf("registered %d bindings, want 9", fx.engine.Bindings())
	}

	// Digit 3 resolves to code 12 in the fake keyboard.
	a := fx.engine.Lookup(binding.ContextRoot, key.ModNone, 12)
	if a.Kind() != action.Desktop {
		t.Errorf("kind = %v, want desktop", a.Kind())
	}
	if a.Param() != 3 {
		t.Errorf("param = %d, want 3", a.Param())
	}
}

func TestLookupNoMatch(t *testing.T) {
	fx := newFixture()
	fx.engine.Startup()

	if a := fx.engine.Lookup(binding.ContextRoot, key.ModNone, 42); a != action.None {
		t.Errorf("Lookup on empty table = %v, want none", a)
	}
}

func TestStartupInstallsGrabs(t *testing.T) {
	fx := newFixture()
	fx.windows.trays = []x11.Window{20}
	fx.engine.RegisterKeyBinding(action.Exec, "C", "Return", "", "xterm")
	fx.engine.RegisterKeyBinding(action.Up, "", "k", "", "")
	fx.engine.Startup()

	// Only the exec binding grabs: 2^2 combinations on root + one tray.
	if len(fx.conn.grabs) != 8 {
		t.Fatalf("issued %d grabs, want 8", len(fx.conn.grabs))
	}
	for _, code := range fx.conn.grabs {
		if code != 36 {
			t.Errorf("grabbed code %d, want 36", code)
		}
	}
}

func TestShutdownUngrabsEverything(t *testing.T) {
	fx := newFixture()
	fx.windows.trays = []x11.Window{20}
	fx.windows.clients = []x11.Window{30, 31}
	fx.engine.Startup()
	fx.engine.Shutdown()

	if len(fx.conn.ungrabs) != 4 {
		t.Fatalf("ungrabbed %d windows, want clients+tray+root = 4", len(fx.conn.ungrabs))
	}
}

func TestShowKeyMenu(t *testing.T) {
	fx := newFixture()
	fx.menus.defined[2] = true
	fx.engine.RegisterKeyBinding(action.Root, "A", "m", "", "2")
	fx.engine.Startup()

	code := fx.conn.SymToCode('m')
	fx.engine.ShowKeyMenu(binding.ContextRoot, key.ModMod1, code)

	if len(fx.menus.shown) != 1 || fx.menus.shown[0] != 2 {
		t.Errorf("shown = %v, want [2]", fx.menus.shown)
	}
}

// A command that is not a menu reference presents nothing.
func TestShowKeyMenuInvalidIndex(t *testing.T) {
	fx := newFixture()
	fx.engine.RegisterKeyBinding(action.Root, "A", "m", "", "nonsense")
	fx.engine.Startup()

	code := fx.conn.SymToCode('m')
	fx.engine.ShowKeyMenu(binding.ContextRoot, key.ModMod1, code)

	if len(fx.menus.shown) != 0 {
		t.Errorf("shown = %v, want none", fx.menus.shown)
	}
}

func TestValidateBindings(t *testing.T) {
	fx := newFixture()
	fx.menus.defined[1] = true
	fx.engine.RegisterKeyBinding(action.Root, "", "m", "", "1")
	fx.engine.RegisterKeyBinding(action.Root, "", "n", "", "5")
	fx.hook.Reset()

	fx.engine.ValidateBindings()

	if len(fx.hook.Entries) != 1 {
		t.Errorf("got %d diagnostics, want 1 for the undefined menu", len(fx.hook.Entries))
	}
	if fx.engine.Bindings() != 2 {
		t.Error("validation must not drop bindings")
	}
}

// The restart sequence re-derives resolution and grabs from scratch.
func TestRestartCycle(t *testing.T) {
	fx := newFixture()
	fx.engine.RegisterKeyBinding(action.Exec, "C", "Return", "", "xterm")
	fx.engine.Startup()

	grabsBefore := len(fx.conn.grabs)

	fx.engine.Shutdown()
	fx.engine.Teardown()

	if fx.engine.Bindings() != 0 {
		t.Fatal("teardown should empty the table")
	}

	fx.engine.RegisterKeyBinding(action.Exec, "C", "Return", "", "urxvt")
	fx.engine.Startup()

	if len(fx.conn.grabs) != grabsBefore*2 {
		t.Errorf("second startup issued %d grabs total, want %d",
			len(fx.conn.grabs), grabsBefore*2)
	}

	fx.engine.RunKeyCommand(binding.ContextRoot, key.ModControl, 36)
	if len(fx.runner.commands) != 1 || fx.runner.commands[0] != "urxvt" {
		t.Errorf("commands = %v, want the re-parsed binding", fx.runner.commands)
	}
}

// A keyboard remap moves Return to a new keycode; Remap must re-grab
// and re-match at the new code without a configuration reload.
func TestRemapFollowsKeyboardChange(t *testing.T) {
	fx := newFixture()
	fx.engine.RegisterKeyBinding(action.Exec, "C", "Return", "", "xterm")
	fx.engine.Startup()

	fx.conn.returnCode = 40
	fx.engine.Remap()

	if len(fx.conn.ungrabs) == 0 {
		t.Error("remap should remove the stale grabs first")
	}
	last := fx.conn.grabs[len(fx.conn.grabs)-1]
	if last != 40 {
		t.Errorf("last grab at code %d, want the remapped 40", last)
	}

	if got := fx.engine.Lookup(binding.ContextRoot, key.ModControl, 40); got != action.Exec {
		t.Errorf("Lookup at the new code = %v, want Exec", got)
	}
	if got := fx.engine.Lookup(binding.ContextRoot, key.ModControl, 36); got != action.None {
		t.Errorf("Lookup at the stale code = %v, want None", got)
	}
}
