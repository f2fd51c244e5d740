// Package app assembles the binding engine, the configuration loader,
// and the server connection into a running daemon: load, grab, then
// dispatch root-window input until asked to stop.
package app

import (
	"errors"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"

	"keybind/internal/command"
	"keybind/internal/config"
	"keybind/internal/input"
	"keybind/internal/input/action"
	"keybind/internal/input/binding"
	"keybind/internal/input/key"
	"keybind/internal/menu"
	"keybind/internal/x11"
)

// Server is the slice of the X connection the application drives:
// everything the binding engine consumes, plus the event stream and
// the mapping refresh used across restarts.
type Server interface {
	input.Conn

	Refresh() error
	SelectRootInput() error
	NextEvent() (xgb.Event, xgb.Error)
	Close()
}

// Application wires the collaborators together and owns the event
// loop. All state changes happen on the loop goroutine; Stop and
// Reload only signal it.
type Application struct {
	srv    Server
	engine *input.Engine
	menus  *menu.Registry
	cmds   *command.Lists

	cfgPath string
	log     logrus.FieldLogger

	reloadc  chan struct{}
	quitc    chan struct{}
	stopOnce sync.Once
}

// noWindows is the standalone window set: no tray widgets, no managed
// clients. Grabs land on the root window only.
type noWindows struct{}

func (noWindows) TrayWindows() []x11.Window   { return nil }
func (noWindows) ClientWindows() []x11.Window { return nil }

// New creates an application around a connected server. The
// configuration is not read until Run.
func New(srv Server, cfgPath string, log logrus.FieldLogger) *Application {
	a := &Application{
		srv:     srv,
		cfgPath: cfgPath,
		log:     log,
		reloadc: make(chan struct{}, 1),
		quitc:   make(chan struct{}),
	}

	runner := command.NewRunner(log.WithField("component", "command"))
	a.cmds = command.NewLists(runner)
	a.menus = menu.NewRegistry(nil, log.WithField("component", "menu"))
	a.engine = input.New(srv, noWindows{}, runner, a.menus, log.WithField("component", "input"))
	return a
}

// Run loads the configuration, installs the grabs, runs the startup
// commands, and then dispatches events until Stop is called or the
// connection drops. The shutdown commands run before it returns.
func (a *Application) Run() error {
	a.applyConfig()
	a.engine.ValidateBindings()
	a.cmds.RunStartup(false)
	a.engine.Startup()
	a.log.Infof("engine started with %d bindings, lock mask %v",
		a.engine.Bindings(), a.engine.LockMask())

	if err := a.srv.SelectRootInput(); err != nil {
		return err
	}

	events := make(chan xgb.Event)
	go a.pump(events)

loop:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				a.log.Warn("connection to the X server lost")
				break loop
			}
			a.dispatch(ev)
		case <-a.reloadc:
			a.restart()
		case <-a.quitc:
			break loop
		}
	}

	a.engine.Shutdown()
	a.cmds.RunShutdown(false)
	a.srv.Close()
	return nil
}

// Stop asks the event loop to exit. Safe to call from any goroutine,
// any number of times.
func (a *Application) Stop() {
	a.stopOnce.Do(func() { close(a.quitc) })
}

// Reload asks the event loop to re-read the configuration and restart
// the engine. Signals already pending coalesce into one restart.
func (a *Application) Reload() {
	select {
	case a.reloadc <- struct{}{}:
	default:
	}
}

// pump forwards server events to the loop and closes the channel when
// the connection ends.
func (a *Application) pump(events chan<- xgb.Event) {
	defer close(events)
	for {
		ev, xerr := a.srv.NextEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			a.log.Warnf("X error: %v", xerr)
			continue
		}
		events <- ev
	}
}

func (a *Application) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		a.handlePress(key.Modifier(e.State), key.Code(e.Detail))
	case xproto.ButtonPressEvent:
		a.handlePress(key.Modifier(e.State), key.Code(e.Detail))
	case xproto.MappingNotifyEvent:
		a.log.Info("keyboard mapping changed")
		if err := a.srv.Refresh(); err != nil {
			a.log.Warnf("refreshing keyboard mapping: %v", err)
			return
		}
		a.engine.Remap()
	}
}

// handlePress dispatches one key or button press seen on the root
// window. Presses that match no binding are dropped silently.
func (a *Application) handlePress(state key.Modifier, code key.Code) {
	act := a.engine.Lookup(binding.ContextRoot, state, code)

	switch act.Kind() {
	case action.None:
	case action.Exec:
		a.engine.RunKeyCommand(binding.ContextRoot, state, code)
	case action.Root:
		a.engine.ShowKeyMenu(binding.ContextRoot, state, code)
	case action.Restart:
		a.restart()
	case action.Exit:
		a.Stop()
	default:
		// Window-management actions need a managed client to act
		// on; a standalone daemon has none to offer.
		a.log.Debugf("no target for action %v", act)
	}
}

// restart tears the engine down to empty, re-reads the configuration,
// and brings everything back up. The restart command list runs in
// place of the shutdown and startup lists.
func (a *Application) restart() {
	a.log.Info("restarting")

	a.engine.Shutdown()
	a.engine.Teardown()
	a.cmds.Clear()
	a.menus.Clear()

	if err := a.srv.Refresh(); err != nil {
		a.log.Warnf("refreshing keyboard mapping: %v", err)
	}

	a.applyConfig()
	a.engine.ValidateBindings()
	a.cmds.RunStartup(true)
	a.engine.Startup()
	a.log.Infof("engine restarted with %d bindings", a.engine.Bindings())
}

// applyConfig loads the configuration file and registers its contents.
// A missing or broken file leaves the engine empty rather than killing
// the process; a later reload can still recover.
func (a *Application) applyConfig() {
	cfg, err := config.Load(a.cfgPath)
	switch {
	case errors.Is(err, config.ErrNotFound):
		a.log.Infof("no configuration file at %s, starting empty", a.cfgPath)
		cfg = &config.Config{}
	case err != nil:
		a.log.Warnf("loading configuration: %v", err)
		cfg = &config.Config{}
	}
	cfg.Apply(a.engine, a.menus, a.cmds, a.log)
}
