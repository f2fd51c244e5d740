package binding

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"keybind/internal/input/action"
	"keybind/internal/input/key"
)

// SymResolver resolves a symbolic key name to a key symbol, normally
// backed by the X server's symbol-name table. An unresolvable name
// yields key.NoSym.
type SymResolver interface {
	NameToSym(name string) key.Sym
}

// CodeMapper maps a key symbol to the physical keycode that currently
// carries it. A symbol absent from the keyboard yields zero.
type CodeMapper interface {
	SymToCode(sym key.Sym) key.Code
}

// Table is the ordered collection of registered bindings. Records are
// appended in registration order and matched newest-first, so a later
// registration overrides an earlier one with the same context, state,
// and code. The table is built during configuration parsing, resolved
// once at startup, and read-only until the next restart cycle.
type Table struct {
	records []Binding
	syms    SymResolver
	log     logrus.FieldLogger
}

// NewTable creates an empty binding table. Key names are resolved
// through syms at registration time.
func NewTable(syms SymResolver, log logrus.FieldLogger) *Table {
	return &Table{
		syms: syms,
		log:  log,
	}
}

// RegisterKey registers a key binding.
//
// mods is parsed against the fixed modifier-name table; unrecognized
// characters are reported and skipped. Exactly one of stroke and
// rawCode must be non-empty: stroke names a key symbol (resolved now,
// mapped to a keycode at startup), rawCode is a literal keycode.
//
// A stroke containing a '#' placeholder expands into nine bindings, one
// per digit 1-9 substituted at the marker, each with the digit packed
// into the action's parameter bits. If a digit fails to resolve the
// sweep stops; bindings produced for smaller digits remain registered.
func (t *Table) RegisterKey(act action.Action, mods, stroke, rawCode, command string) {
	mask := t.parseMods(mods)

	switch {
	case stroke != "":
		if offset := strings.IndexByte(stroke, '#'); offset >= 0 {
			t.expandPlaceholder(act, mask, stroke, offset)
			return
		}

		sym := t.parseKeyName(stroke)
		if sym == key.NoSym {
			return
		}
		t.records = append(t.records, Binding{
			Action:  act,
			Context: ContextRoot,
			Mods:    mask,
			Sym:     sym,
			Command: command,
		})

	case rawCode != "":
		code, err := strconv.ParseUint(rawCode, 10, 32)
		if err != nil {
			t.log.Warnf("invalid keycode: %q", rawCode)
			return
		}
		t.records = append(t.records, Binding{
			Action:  act,
			Context: ContextRoot,
			Mods:    mask,
			Code:    key.Code(code),
			Command: command,
		})

	default:
		t.log.Warn("neither key nor keycode specified for key binding")
	}
}

// expandPlaceholder registers one binding per digit 1-9 substituted at
// the marker offset. Expanded bindings carry no command; the digit is
// packed into the action parameter instead.
func (t *Table) expandPlaceholder(act action.Action, mask key.Modifier, stroke string, offset int) {
	for digit := byte('1'); digit <= '9'; digit++ {
		name := stroke[:offset] + string(digit) + stroke[offset+1:]
		sym := t.parseKeyName(name)
		if sym == key.NoSym {
			return
		}
		t.records = append(t.records, Binding{
			Action:  act.WithParam(int(digit - '0')),
			Context: ContextRoot,
			Mods:    mask,
			Sym:     sym,
		})
	}
}

// RegisterButton registers a pointer button binding for a context.
// The button number is already a physical code, so no resolution pass
// is needed.
func (t *Table) RegisterButton(button key.Code, mods string, context Context, act action.Action, command string) {
	t.records = append(t.records, Binding{
		Action:  act,
		Context: context,
		Mods:    t.parseMods(mods),
		Code:    button,
		Command: command,
	})
}

// Resolve fills in the physical code of every key binding that does not
// have one yet. It runs once per startup cycle; codes resolved earlier
// are kept.
func (t *Table) Resolve(mapper CodeMapper) {
	for i := range t.records {
		rec := &t.records[i]
		if !rec.Code.IsValid() && rec.Sym != key.NoSym {
			rec.Code = mapper.SymToCode(rec.Sym)
		}
	}
}

// Invalidate drops the cached code of every symbol-carrying binding so
// the next Resolve re-reads it, after the server's keyboard mapping
// changed. Raw-keycode bindings keep their code.
func (t *Table) Invalidate() {
	for i := range t.records {
		rec := &t.records[i]
		if rec.Sym != key.NoSym {
			rec.Code = 0
		}
	}
}

// Match finds the binding for an incoming event. Lock modifier bits are
// stripped from the event state before comparison, so Caps/Num Lock
// never affect whether a binding matches. The scan runs newest-first
// and short-circuits on the first hit; most events match nothing, which
// is not an error.
func (t *Table) Match(context Context, state key.Modifier, code key.Code, lockMask key.Modifier) *Binding {
	state = state.Without(lockMask)

	for i := len(t.records) - 1; i >= 0; i-- {
		rec := &t.records[i]
		if rec.Context == context && rec.Mods == state && rec.Code == code {
			return rec
		}
	}
	return nil
}

// MenuSet is the set of defined root menus, consulted by Validate.
type MenuSet interface {
	// ResolveIndex parses a binding command as a root menu reference.
	ResolveIndex(command string) int

	// IsDefined reports whether a root menu exists at the index.
	IsDefined(index int) bool
}

// Validate cross-checks every root-menu-referencing binding against the
// set of defined menus. Undefined references are reported and left in
// place; validation never removes a binding or stops early.
func (t *Table) Validate(menus MenuSet) {
	for i := range t.records {
		rec := &t.records[i]
		if rec.Action.Kind() != action.Root || rec.Command == "" {
			continue
		}
		if !menus.IsDefined(menus.ResolveIndex(rec.Command)) {
			t.log.Warnf("key binding: root menu %q not defined", rec.Command)
		}
	}
}

// Bindings returns the records in registration order. The grab manager
// walks this to install grabs; callers must not mutate it.
func (t *Table) Bindings() []Binding {
	return t.records
}

// Len returns the number of registered bindings.
func (t *Table) Len() int {
	return len(t.records)
}

// Release drops every record. The table is reusable afterward, but a
// fresh registration, resolution, and grab pass is required.
func (t *Table) Release() {
	t.records = nil
}

func (t *Table) parseMods(mods string) key.Modifier {
	mask, unknown := key.ParseModifierString(mods)
	for _, r := range unknown {
		t.log.Warnf("invalid modifier: %q", string(r))
	}
	return mask
}

func (t *Table) parseKeyName(name string) key.Sym {
	sym := t.syms.NameToSym(name)
	if sym == key.NoSym {
		t.log.Warnf("invalid key symbol: %q", name)
	}
	return sym
}
