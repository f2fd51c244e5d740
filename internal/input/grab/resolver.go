package grab

import (
	"github.com/sirupsen/logrus"

	"keybind/internal/input/key"
	"keybind/internal/x11"
)

// KeyboardMap is the live keyboard-to-modifier mapping service.
type KeyboardMap interface {
	// ModifierMapping returns the keycodes assigned to each of the
	// eight modifier bit positions.
	ModifierMapping() ([][]key.Code, error)

	// SymToCode maps a keysym to the keycode currently carrying it.
	SymToCode(sym key.Sym) key.Code
}

// LockModifier is one entry of the fixed lock-modifier set: a symbolic
// key identity and the modifier bit it was found on, zero until
// resolution (and zero permanently when the key is absent, which is
// common for Num Lock on laptop keyboards).
type LockModifier struct {
	Sym  key.Sym
	Mask key.Modifier
}

// Resolver discovers which modifier bits the lock keys currently
// occupy. It runs exactly once per startup or restart cycle; the union
// of the discovered bits is the process-wide lock mask that dispatch
// strips from every incoming event.
type Resolver struct {
	locks []LockModifier
	log   logrus.FieldLogger
}

// NewResolver creates a resolver over the fixed lock set: Caps Lock
// and Num Lock.
func NewResolver(log logrus.FieldLogger) *Resolver {
	return &Resolver{
		locks: []LockModifier{
			{Sym: x11.SymCapsLock},
			{Sym: x11.SymNumLock},
		},
		log: log,
	}
}

// Resolve queries the keyboard mapping and returns the composite lock
// mask. A lock key that is missing from the keyboard or assigned to no
// modifier contributes zero bits; both cases are reported and
// non-fatal.
func (r *Resolver) Resolve(kb KeyboardMap) key.Modifier {
	rows, err := kb.ModifierMapping()
	if err != nil {
		r.log.Warnf("querying modifier mapping: %v", err)
		return key.ModNone
	}

	var mask key.Modifier
	for i := range r.locks {
		r.locks[i].Mask = r.findMask(rows, kb, r.locks[i].Sym)
		mask |= r.locks[i].Mask
	}
	return mask
}

func (r *Resolver) findMask(rows [][]key.Code, kb KeyboardMap, sym key.Sym) key.Modifier {
	code := kb.SymToCode(sym)
	if !code.IsValid() {
		r.log.Warnf("keysym %#x is not defined for any keycode", uint32(sym))
		return key.ModNone
	}

	for bit, codes := range rows {
		for _, c := range codes {
			if c == code {
				return key.Modifier(1) << bit
			}
		}
	}

	r.log.Warnf("modifier not found for keysym %#x", uint32(sym))
	return key.ModNone
}

// LockMasks returns the individual mask of every entry in the lock set,
// including entries that resolved to zero. The grab manager derives its
// 2^k lock-state combinations from this slice, so its length is stable
// across keyboards.
func (r *Resolver) LockMasks() []key.Modifier {
	masks := make([]key.Modifier, len(r.locks))
	for i, l := range r.locks {
		masks[i] = l.Mask
	}
	return masks
}
