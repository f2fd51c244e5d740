package command

// Executor runs one command string. Satisfied by Runner.
type Executor interface {
	Run(command string)
}

// Lists holds the startup, shutdown, and restart command lists from
// the configuration. Which list runs depends on whether the process is
// booting, restarting, or exiting: a restart runs the restart list in
// place of both the startup and shutdown lists.
type Lists struct {
	startup  []string
	shutdown []string
	restart  []string

	run Executor
}

// NewLists creates empty command lists backed by an executor.
func NewLists(run Executor) *Lists {
	return &Lists{run: run}
}

// AddStartup appends a command to the startup list.
func (l *Lists) AddStartup(command string) {
	l.startup = append(l.startup, command)
}

// AddShutdown appends a command to the shutdown list.
func (l *Lists) AddShutdown(command string) {
	l.shutdown = append(l.shutdown, command)
}

// AddRestart appends a command to the restart list.
func (l *Lists) AddRestart(command string) {
	l.restart = append(l.restart, command)
}

// RunStartup runs the startup list, or the restart list when the
// process is re-entering startup after a restart.
func (l *Lists) RunStartup(restarting bool) {
	if restarting {
		l.runAll(l.restart)
		return
	}
	l.runAll(l.startup)
}

// RunShutdown runs the shutdown list unless the process is restarting.
func (l *Lists) RunShutdown(restarting bool) {
	if restarting {
		return
	}
	l.runAll(l.shutdown)
}

// Clear empties all three lists ahead of a configuration re-parse.
func (l *Lists) Clear() {
	l.startup = nil
	l.shutdown = nil
	l.restart = nil
}

func (l *Lists) runAll(commands []string) {
	for _, c := range commands {
		l.run.Run(c)
	}
}
