package key

import "strings"

// Modifier is a bitmask over the eight standard X modifier bit positions.
type Modifier uint16

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift is the Shift modifier bit.
	ModShift Modifier = 1 << 0

	// ModLock is the Caps Lock modifier bit.
	ModLock Modifier = 1 << 1

	// ModControl is the Control modifier bit.
	ModControl Modifier = 1 << 2

	// ModMod1 through ModMod5 are the five configurable modifier bits.
	// Mod1 is almost always Alt; Num Lock commonly lands on Mod2.
	ModMod1 Modifier = 1 << 3
	ModMod2 Modifier = 1 << 4
	ModMod3 Modifier = 1 << 5
	ModMod4 Modifier = 1 << 6
	ModMod5 Modifier = 1 << 7
)

// Has returns true if m contains any of the specified modifier bits.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified bits added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified bits removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifier bits are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Control+Mod1".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	names := []struct {
		mask Modifier
		name string
	}{
		{ModShift, "Shift"},
		{ModLock, "Lock"},
		{ModControl, "Control"},
		{ModMod1, "Mod1"},
		{ModMod2, "Mod2"},
		{ModMod3, "Mod3"},
		{ModMod4, "Mod4"},
		{ModMod5, "Mod5"},
	}

	var parts []string
	for _, n := range names {
		if m.Has(n.mask) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// modifierName maps a single configuration character to a modifier bit.
// The table is fixed; it is consulted only while parsing modifier strings.
type modifierName struct {
	name rune
	mask Modifier
}

var modifierNames = []modifierName{
	{'C', ModControl},
	{'S', ModShift},
	{'A', ModMod1},
	{'1', ModMod1},
	{'2', ModMod2},
	{'3', ModMod3},
	{'4', ModMod4},
	{'5', ModMod5},
}

// ParseModifierString parses a modifier string character by character
// against the fixed name table. The returned mask is the OR of every
// recognized character. Unrecognized characters are skipped and returned
// so the caller can report them; they never abort the parse.
func ParseModifierString(s string) (Modifier, []rune) {
	var mask Modifier
	var unknown []rune

	for _, r := range s {
		found := false
		for _, mn := range modifierNames {
			if mn.name == r {
				mask = mask.With(mn.mask)
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, r)
		}
	}

	return mask, unknown
}
