package binding

// Context is the logical input-origin category a binding is scoped to.
// A binding only matches events reported in the same context.
type Context int

const (
	ContextNone Context = iota
	ContextRoot
	ContextBorder
	ContextTitle
	ContextIcon
	ContextClient
	ContextTray
	ContextClose
	ContextMaximize
	ContextMinimize
)

var contextNames = map[string]Context{
	"none":     ContextNone,
	"root":     ContextRoot,
	"border":   ContextBorder,
	"title":    ContextTitle,
	"icon":     ContextIcon,
	"client":   ContextClient,
	"tray":     ContextTray,
	"close":    ContextClose,
	"maximize": ContextMaximize,
	"minimize": ContextMinimize,
}

// ContextFromName returns the context for a configuration name.
func ContextFromName(name string) (Context, bool) {
	c, ok := contextNames[name]
	return c, ok
}

// String returns the configuration name of the context.
func (c Context) String() string {
	for name, ctx := range contextNames {
		if ctx == c {
			return name
		}
	}
	return "unknown"
}
