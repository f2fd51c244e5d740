package grab

import (
	"github.com/sirupsen/logrus"

	"keybind/internal/input/binding"
	"keybind/internal/input/key"
	"keybind/internal/x11"
)

// Grabber issues passive grabs against the windowing server.
type Grabber interface {
	// GrabKey installs one passive grab for an exact code/modifier
	// combination on a window.
	GrabKey(code key.Code, mods key.Modifier, win x11.Window)

	// UngrabAll removes every grab on a window, any code and any
	// modifier.
	UngrabAll(win x11.Window)
}

// Manager installs and removes the server-side grabs for a binding
// table. For each grab-eligible binding it issues one grab per
// lock-modifier combination, so the binding fires identically whether
// or not Caps/Num Lock happen to be engaged.
type Manager struct {
	srv   Grabber
	locks []key.Modifier
	log   logrus.FieldLogger
}

// NewManager creates a grab manager over a server connection.
func NewManager(srv Grabber, log logrus.FieldLogger) *Manager {
	return &Manager{srv: srv, log: log}
}

// SetLockMasks supplies the resolved per-lock modifier masks. Must be
// called before Install; the resolver produces the slice once per
// startup cycle.
func (m *Manager) SetLockMasks(masks []key.Modifier) {
	m.locks = masks
}

// Install issues grabs for every eligible binding on the root window
// and every tray window. Bindings whose action is not on the grab
// allow-list are matched passively and skipped here; bindings whose
// code never resolved have nothing to grab.
func (m *Manager) Install(bindings []binding.Binding, root x11.Window, trays []x11.Window) {
	for i := range bindings {
		b := &bindings[i]
		if !b.Action.Grabs() {
			continue
		}

		m.grab(b, root)
		for _, tray := range trays {
			m.grab(b, tray)
		}
	}
}

// grab issues the 2^k grabs for one binding on one window: the
// binding's own modifier mask OR'd with every subset of the lock
// masks, each subset exactly once.
func (m *Manager) grab(b *binding.Binding, win x11.Window) {
	if !b.Code.IsValid() {
		return
	}

	combos := 1 << len(m.locks)
	for index := 0; index < combos; index++ {
		mask := b.Mods
		for x, lock := range m.locks {
			if index&(1<<x) != 0 {
				mask |= lock
			}
		}
		m.srv.GrabKey(b.Code, mask, win)
	}
}

// RemoveAll removes every grab on the managed client windows, the tray
// windows, and the root window. Removal is deliberately coarser than
// installation: a blanket any-code/any-modifier ungrab per window,
// idempotent and safe even if Install never ran.
func (m *Manager) RemoveAll(root x11.Window, trays, clients []x11.Window) {
	for _, win := range clients {
		m.srv.UngrabAll(win)
	}
	for _, win := range trays {
		m.srv.UngrabAll(win)
	}
	m.srv.UngrabAll(root)
}
