// Package action defines the closed set of actions a binding can invoke.
//
// An Action is a tagged value: the low byte identifies the action kind
// and the remaining bits carry an optional numeric parameter, packed by
// placeholder expansion (a desktop-switch binding expanded from "#"
// stores the digit there).
package action

import "strconv"

// Action identifies what a matched binding does.
type Action uint32

const (
	// kindMask isolates the action kind from the parameter bits.
	kindMask Action = 0xff

	// paramShift is the bit offset of the packed numeric parameter.
	paramShift = 8
)

// Action kinds. The enumeration is closed; configuration names map onto
// it through Names.
const (
	None Action = iota

	// Menu and move/resize traversal actions. These are delivered to
	// whichever interactive operation is in progress and are never
	// grabbed globally.
	Up
	Down
	Right
	Left
	Escape
	Enter

	// Window management and session actions.
	Next
	NextStacked
	Prev
	PrevStacked
	Close
	Minimize
	Maximize
	Shade
	Stick
	Move
	Resize
	Root
	Window
	Desktop
	RightDesktop
	LeftDesktop
	UpDesktop
	DownDesktop
	ShowDesktop
	ShowTray
	Exec
	Restart
	Exit
	Fullscreen
	SendRight
	SendLeft
	SendUp
	SendDown
	MaximizeTop
	MaximizeBottom
	MaximizeLeft
	MaximizeRight
	MaximizeVert
	MaximizeHorz
	Restore
)

// Kind returns the action kind with any packed parameter removed.
func (a Action) Kind() Action {
	return a & kindMask
}

// Param returns the numeric parameter packed above the kind byte,
// or zero if none was packed.
func (a Action) Param() int {
	return int(a >> paramShift)
}

// WithParam returns the action with n packed into the parameter bits.
func (a Action) WithParam(n int) Action {
	return a.Kind() | Action(n)<<paramShift
}

// Grabs reports whether bindings for this action are grabbed on the
// server so they fire regardless of input focus. The list is a fixed
// allow-list: global window management, navigation, exec, and session
// control. Everything else is matched passively.
func (a Action) Grabs() bool {
	switch a.Kind() {
	case Next,
		NextStacked,
		Prev,
		PrevStacked,
		Close,
		Minimize,
		Maximize,
		Shade,
		Stick,
		Move,
		Resize,
		Root,
		Window,
		Desktop,
		RightDesktop,
		LeftDesktop,
		UpDesktop,
		DownDesktop,
		ShowDesktop,
		ShowTray,
		Exec,
		Restart,
		Exit,
		Fullscreen,
		SendRight,
		SendLeft,
		SendUp,
		SendDown,
		MaximizeTop,
		MaximizeBottom,
		MaximizeLeft,
		MaximizeRight,
		MaximizeVert,
		MaximizeHorz,
		Restore:
		return true
	default:
		return false
	}
}

// Names maps configuration action names to action kinds.
var Names = map[string]Action{
	"none":        None,
	"up":          Up,
	"down":        Down,
	"right":       Right,
	"left":        Left,
	"escape":      Escape,
	"enter":       Enter,
	"next":        Next,
	"nextstacked": NextStacked,
	"prev":        Prev,
	"prevstacked": PrevStacked,
	"close":       Close,
	"minimize":    Minimize,
	"maximize":    Maximize,
	"shade":       Shade,
	"stick":       Stick,
	"move":        Move,
	"resize":      Resize,
	"root":        Root,
	"window":      Window,
	"desktop":     Desktop,
	"rdesktop":    RightDesktop,
	"ldesktop":    LeftDesktop,
	"udesktop":    UpDesktop,
	"ddesktop":    DownDesktop,
	"showdesktop": ShowDesktop,
	"showtray":    ShowTray,
	"exec":        Exec,
	"restart":     Restart,
	"exit":        Exit,
	"fullscreen":  Fullscreen,
	"sendright":   SendRight,
	"sendleft":    SendLeft,
	"sendup":      SendUp,
	"senddown":    SendDown,
	"maxtop":      MaximizeTop,
	"maxbottom":   MaximizeBottom,
	"maxleft":     MaximizeLeft,
	"maxright":    MaximizeRight,
	"maxv":        MaximizeVert,
	"maxh":        MaximizeHorz,
	"restore":     Restore,
}

// FromName returns the action kind for a configuration name.
func FromName(name string) (Action, bool) {
	a, ok := Names[name]
	return a, ok
}

// String returns the configuration name of the action kind, with the
// packed parameter appended when present.
func (a Action) String() string {
	for name, act := range Names {
		if act == a.Kind() {
			if p := a.Param(); p != 0 {
				return name + ":" + strconv.Itoa(p)
			}
			return name
		}
	}
	return "unknown"
}
