// Package x11 is the windowing-server boundary: an xgb-backed
// connection that exposes exactly the keyboard and grab services the
// binding engine consumes.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"

	"keybind/internal/input/key"
)

// Window is an X window handle.
type Window uint32

// Conn wraps an X server connection. The keyboard mapping is fetched
// once at connect time; Refresh re-reads it across a restart cycle.
type Conn struct {
	conn   *xgb.Conn
	root   Window
	minKey xproto.Keycode
	maxKey xproto.Keycode

	symsPerCode byte
	keysyms     []xproto.Keysym

	log logrus.FieldLogger
}

// Connect opens a connection to the X display. An empty display name
// falls back to $DISPLAY.
func Connect(display string, log logrus.FieldLogger) (*Conn, error) {
	xc, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connecting to X display: %w", err)
	}

	setup := xproto.Setup(xc)
	screen := setup.DefaultScreen(xc)

	c := &Conn{
		conn:   xc,
		root:   Window(screen.Root),
		minKey: setup.MinKeycode,
		maxKey: setup.MaxKeycode,
		log:    log,
	}

	if err := c.Refresh(); err != nil {
		xc.Close()
		return nil, err
	}

	return c, nil
}

// Refresh re-reads the keyboard mapping from the server.
func (c *Conn) Refresh() error {
	count := byte(c.maxKey - c.minKey + 1)
	reply, err := xproto.GetKeyboardMapping(c.conn, c.minKey, count).Reply()
	if err != nil {
		return fmt.Errorf("fetching keyboard mapping: %w", err)
	}

	c.symsPerCode = reply.KeysymsPerKeycode
	c.keysyms = reply.Keysyms
	return nil
}

// RootWindow returns the root window of the default screen.
func (c *Conn) RootWindow() Window {
	return c.root
}

// NameToSym resolves a symbolic key name against the symbol-name table.
func (c *Conn) NameToSym(name string) key.Sym {
	return StringToKeysym(name)
}

// SymToCode returns the first keycode carrying the symbol in any
// column of the keyboard mapping, or zero if the symbol is not mapped.
func (c *Conn) SymToCode(sym key.Sym) key.Code {
	per := int(c.symsPerCode)
	for code := c.minKey; code <= c.maxKey; code++ {
		base := int(code-c.minKey) * per
		for col := 0; col < per; col++ {
			if c.keysyms[base+col] == xproto.Keysym(sym) {
				return key.Code(code)
			}
		}
	}
	return 0
}

// ModifierMapping returns the keycodes currently assigned to each of
// the eight modifier bit positions.
func (c *Conn) ModifierMapping() ([][]key.Code, error) {
	reply, err := xproto.GetModifierMapping(c.conn).Reply()
	if err != nil {
		return nil, fmt.Errorf("fetching modifier mapping: %w", err)
	}

	per := int(reply.KeycodesPerModifier)
	rows := make([][]key.Code, 8)
	for bit := 0; bit < 8; bit++ {
		for i := 0; i < per; i++ {
			code := reply.Keycodes[bit*per+i]
			if code != 0 {
				rows[bit] = append(rows[bit], key.Code(code))
			}
		}
	}
	return rows, nil
}

// GrabKey installs a passive grab for a keycode/modifier combination on
// a window. Grab failures are reported and swallowed; a failed grab
// leaves the remaining grabs unaffected.
func (c *Conn) GrabKey(code key.Code, mods key.Modifier, win Window) {
	err := xproto.GrabKeyChecked(c.conn, true, xproto.Window(win),
		uint16(mods), xproto.Keycode(code),
		xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
	if err != nil {
		c.log.Warnf("grab failed for code %d mods %v: %v", code, mods, err)
	}
}

// UngrabAll removes every key grab on a window, any code and any
// modifier combination. Safe to call for windows that were never
// grabbed.
func (c *Conn) UngrabAll(win Window) {
	err := xproto.UngrabKeyChecked(c.conn, xproto.Keycode(xproto.GrabAny),
		xproto.Window(win), xproto.ModMaskAny).Check()
	if err != nil {
		c.log.Warnf("ungrab failed for window %#x: %v", uint32(win), err)
	}
}

// SelectRootInput subscribes the connection to key and button press
// events on the root window.
func (c *Conn) SelectRootInput() error {
	err := xproto.ChangeWindowAttributesChecked(c.conn, xproto.Window(c.root),
		xproto.CwEventMask, []uint32{
			xproto.EventMaskKeyPress | xproto.EventMaskButtonPress,
		}).Check()
	if err != nil {
		return fmt.Errorf("selecting root input: %w", err)
	}
	return nil
}

// NextEvent blocks until the next event or error arrives. Both return
// values are nil once the connection is closed.
func (c *Conn) NextEvent() (xgb.Event, xgb.Error) {
	return c.conn.WaitForEvent()
}

// Close shuts the connection down, unblocking any NextEvent caller.
func (c *Conn) Close() {
	c.conn.Close()
}
