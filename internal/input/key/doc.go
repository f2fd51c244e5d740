// Package key defines the primitive input types shared by the binding
// engine: modifier masks, symbolic key identities, and physical codes.
//
// Modifier follows the X modifier model of eight fixed bit positions.
// Configuration refers to modifiers with single characters ("C" for
// Control, "S" for Shift, "A" or "1" for Mod1, "2".."5" for the
// remaining mod bits); ParseModifierString turns such a string into a
// mask, tolerating and reporting unknown characters.
package key
