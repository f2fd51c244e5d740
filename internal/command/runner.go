// Package command executes the opaque shell command strings bindings
// and lifecycle hooks resolve to. Commands are fire and forget: the
// engine never consumes an exit status.
package command

import (
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Runner spawns shell commands detached from the event loop.
type Runner struct {
	shell string
	log   logrus.FieldLogger
}

// NewRunner creates a runner using /bin/sh.
func NewRunner(log logrus.FieldLogger) *Runner {
	return &Runner{shell: "/bin/sh", log: log}
}

// Run starts the command and returns immediately. An empty command is
// a no-op; a spawn failure is reported and swallowed.
func (r *Runner) Run(command string) {
	if command == "" {
		return
	}

	cmd := exec.Command(r.shell, "-c", command)
	if err := cmd.Start(); err != nil {
		r.log.Warnf("exec %q: %v", command, err)
		return
	}

	// Reap the child so finished commands do not accumulate as
	// zombies.
	go func() {
		_ = cmd.Wait()
	}()
}
