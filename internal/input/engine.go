package input

import (
	"github.com/sirupsen/logrus"

	"keybind/internal/input/action"
	"keybind/internal/input/binding"
	"keybind/internal/input/grab"
	"keybind/internal/input/key"
	"keybind/internal/x11"
)

// Runner executes an opaque shell command string, fire and forget.
type Runner interface {
	Run(command string)
}

// MenuPresenter is the root-menu collaborator: it resolves a binding
// command to a menu index and presents the menu on request.
type MenuPresenter interface {
	ResolveIndex(command string) int
	IsDefined(index int) bool
	Show(index, x, y int, immediate bool)
}

// Windows lists the auxiliary grab and ungrab targets beyond the root
// window: tray widgets for both, managed client windows (in stacking
// order) for shutdown ungrabs only.
type Windows interface {
	TrayWindows() []x11.Window
	ClientWindows() []x11.Window
}

// Conn is the slice of the server connection the engine consumes.
type Conn interface {
	grab.KeyboardMap
	binding.SymResolver
	binding.CodeMapper

	GrabKey(code key.Code, mods key.Modifier, win x11.Window)
	UngrabAll(win x11.Window)
	RootWindow() x11.Window
}

// Engine owns the binding table, the resolved lock mask, and the grab
// state for one startup/restart cycle. All of its methods run on the
// event-loop goroutine; nothing here locks or blocks.
type Engine struct {
	conn     Conn
	table    *binding.Table
	resolver *grab.Resolver
	grabs    *grab.Manager
	windows  Windows
	runner   Runner
	menus    MenuPresenter

	lockMask key.Modifier
	log      logrus.FieldLogger
}

// New creates an engine around a server connection and its external
// collaborators.
func New(conn Conn, windows Windows, runner Runner, menus MenuPresenter, log logrus.FieldLogger) *Engine {
	return &Engine{
		conn:     conn,
		table:    binding.NewTable(conn, log),
		resolver: grab.NewResolver(log),
		grabs:    grab.NewManager(conn, log),
		windows:  windows,
		runner:   runner,
		menus:    menus,
		log:      log,
	}
}

// RegisterKeyBinding registers a key binding; called by the
// configuration loader before Startup.
func (e *Engine) RegisterKeyBinding(act action.Action, mods, stroke, rawCode, command string) {
	e.table.RegisterKey(act, mods, stroke, rawCode, command)
}

// RegisterButtonBinding registers a pointer button binding.
func (e *Engine) RegisterButtonBinding(button key.Code, mods string, context binding.Context, act action.Action, command string) {
	e.table.RegisterButton(button, mods, context, act, command)
}

// Startup resolves the lock mask and every binding's keycode, then
// installs passive grabs on the root and tray windows. Runs once per
// startup/restart cycle, after registration and before the event loop.
func (e *Engine) Startup() {
	e.lockMask = e.resolver.Resolve(e.conn)
	e.grabs.SetLockMasks(e.resolver.LockMasks())

	e.table.Resolve(e.conn)
	e.grabs.Install(e.table.Bindings(), e.conn.RootWindow(), e.windows.TrayWindows())
}

// Shutdown removes all grabs from the managed clients, trays, and the
// root window. Idempotent; safe even if Startup never ran.
func (e *Engine) Shutdown() {
	e.grabs.RemoveAll(e.conn.RootWindow(), e.windows.TrayWindows(), e.windows.ClientWindows())
}

// Teardown releases the binding table. Grabs must be removed first; a
// restart re-registers into the same engine.
func (e *Engine) Teardown() {
	e.table.Release()
}

// Remap rebuilds the grab state after the server's keyboard mapping
// changed: the installed grabs come off, cached keycodes are dropped,
// and a fresh Startup pass re-resolves and re-grabs everything.
func (e *Engine) Remap() {
	e.Shutdown()
	e.table.Invalidate()
	e.Startup()
}

// Lookup returns the action bound to an event, or action.None. Most
// events match nothing; that is the expected outcome, not an error.
func (e *Engine) Lookup(context binding.Context, state key.Modifier, code key.Code) action.Action {
	rec := e.table.Match(context, state, code, e.lockMask)
	if rec == nil {
		return action.None
	}
	return rec.Action
}

// RunKeyCommand matches an event and hands the bound command to the
// command runner.
func (e *Engine) RunKeyCommand(context binding.Context, state key.Modifier, code key.Code) {
	rec := e.table.Match(context, state, code, e.lockMask)
	if rec == nil {
		return
	}
	e.runner.Run(rec.Command)
}

// ShowKeyMenu matches an event, interprets the bound command as a root
// menu reference, and asks the menu collaborator to present it.
func (e *Engine) ShowKeyMenu(context binding.Context, state key.Modifier, code key.Code) {
	rec := e.table.Match(context, state, code, e.lockMask)
	if rec == nil {
		return
	}
	index := e.menus.ResolveIndex(rec.Command)
	if index < 0 {
		return
	}
	e.menus.Show(index, -1, -1, true)
}

// ValidateBindings cross-checks root-menu references against the
// defined menus, warning about each undefined one.
func (e *Engine) ValidateBindings() {
	e.table.Validate(e.menus)
}

// LockMask returns the composite lock mask resolved at startup.
func (e *Engine) LockMask() key.Modifier {
	return e.lockMask
}

// Bindings returns the number of registered bindings.
func (e *Engine) Bindings() int {
	return e.table.Len()
}
