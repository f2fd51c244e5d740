// Package menu tracks the root menus defined by the configuration and
// resolves binding commands that reference them. Menu construction and
// display live elsewhere; the binding engine only needs to know which
// indexes exist and to request presentation.
package menu

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// InvalidIndex is returned for a command that does not name a root menu.
const InvalidIndex = -1

// maxMenus bounds the root menu indexes, 1 through 9.
const maxMenus = 9

// Registry is the set of defined root menus.
type Registry struct {
	labels map[int]string
	show   ShowFunc
	log    logrus.FieldLogger
}

// ShowFunc presents a root menu. The coordinates may be (-1, -1) for
// "at the pointer"; immediate requests presentation without a
// triggering button held.
type ShowFunc func(index, x, y int, immediate bool)

// NewRegistry creates an empty menu registry. The show function may be
// nil when no presenter is wired, in which case presentation requests
// are logged and dropped.
func NewRegistry(show ShowFunc, log logrus.FieldLogger) *Registry {
	return &Registry{
		labels: make(map[int]string),
		show:   show,
		log:    log,
	}
}

// Define registers a root menu at an index. Out-of-range indexes are
// reported and ignored.
func (r *Registry) Define(index int, label string) {
	if index < 1 || index > maxMenus {
		r.log.Warnf("root menu index %d out of range", index)
		return
	}
	r.labels[index] = label
}

// IsDefined reports whether a root menu exists at the index.
func (r *Registry) IsDefined(index int) bool {
	_, ok := r.labels[index]
	return ok
}

// ResolveIndex parses a binding command as a root menu reference: a
// bare number in range. Anything else is InvalidIndex.
func (r *Registry) ResolveIndex(command string) int {
	n, err := strconv.Atoi(strings.TrimSpace(command))
	if err != nil || n < 1 || n > maxMenus {
		return InvalidIndex
	}
	return n
}

// Show requests presentation of a defined root menu.
func (r *Registry) Show(index, x, y int, immediate bool) {
	if !r.IsDefined(index) {
		return
	}
	if r.show == nil {
		r.log.Debugf("no presenter for root menu %d", index)
		return
	}
	r.show(index, x, y, immediate)
}

// Clear drops every defined menu ahead of a configuration re-parse.
func (r *Registry) Clear() {
	r.labels = make(map[int]string)
}
