package key

// Sym is a symbolic key identity, independent of the physical keyboard
// layout. Values follow the X keysym encoding.
type Sym uint32

// NoSym indicates an unresolvable or absent key symbol.
const NoSym Sym = 0

// Code is a physical input code: a keyboard keycode or a pointer button
// number. A zero Code means the binding has not been resolved yet (or
// its symbol is not present on the current keyboard).
type Code uint32

// IsValid returns true if the code refers to a physical key or button.
func (c Code) IsValid() bool {
	return c != 0
}
