package binding

import (
	"keybind/internal/input/action"
	"keybind/internal/input/key"
)

// Binding is a registered rule mapping an input context, modifier state,
// and physical code to an action and an optional command string.
//
// Exactly one of Sym or Code is set at registration time: key bindings
// carry a symbol and resolve their code once at startup; button bindings
// carry the button number directly. The Code field doubles as the
// resolution cache, so repeated grabs and dispatches never re-resolve.
type Binding struct {
	// Action is the tagged action value, including any parameter packed
	// by placeholder expansion.
	Action action.Action

	// Context scopes the binding to an input-origin category.
	Context Context

	// Mods is the required modifier state, compared against the event
	// state after lock bits have been stripped from the event.
	Mods key.Modifier

	// Sym is the symbolic key identity, NoSym for button bindings.
	Sym key.Sym

	// Code is the physical code. Zero until resolution for key
	// bindings; the button number for button bindings.
	Code key.Code

	// Command is an opaque string handed to the command or menu
	// collaborator at match time. Never interpreted here.
	Command string
}
