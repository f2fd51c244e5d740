package config

import (
	"github.com/sirupsen/logrus"

	"keybind/internal/input/action"
	"keybind/internal/input/binding"
	"keybind/internal/input/key"
)

// Registrar is the engine's registration surface.
type Registrar interface {
	RegisterKeyBinding(act action.Action, mods, stroke, rawCode, command string)
	RegisterButtonBinding(button key.Code, mods string, context binding.Context, act action.Action, command string)
}

// MenuDefiner accepts root menu definitions.
type MenuDefiner interface {
	Define(index int, label string)
}

// CommandLists accepts lifecycle commands.
type CommandLists interface {
	AddStartup(command string)
	AddShutdown(command string)
	AddRestart(command string)
}

// Apply walks the parsed configuration and registers everything it
// declares. Entries with unknown action or context names are reported
// and skipped; the rest of the configuration still applies.
func (c *Config) Apply(reg Registrar, menus MenuDefiner, cmds CommandLists, log logrus.FieldLogger) {
	for _, cmd := range c.Startup {
		cmds.AddStartup(cmd)
	}
	for _, cmd := range c.Shutdown {
		cmds.AddShutdown(cmd)
	}
	for _, cmd := range c.Restart {
		cmds.AddRestart(cmd)
	}

	for _, m := range c.Menus {
		menus.Define(m.Index, m.Label)
	}

	for _, k := range c.Keys {
		act, ok := action.FromName(k.Action)
		if !ok {
			log.Warnf("unknown action %q for key %q", k.Action, k.Key)
			continue
		}
		reg.RegisterKeyBinding(act, k.Mods, k.Key, k.Keycode, k.Command)
	}

	for _, b := range c.Buttons {
		act, ok := action.FromName(b.Action)
		if !ok {
			log.Warnf("unknown action %q for button %d", b.Action, b.Button)
			continue
		}
		ctx, ok := binding.ContextFromName(b.Context)
		if !ok {
			log.Warnf("unknown context %q for button %d", b.Context, b.Button)
			continue
		}
		reg.RegisterButtonBinding(key.Code(b.Button), b.Mods, ctx, act, b.Command)
	}
}
