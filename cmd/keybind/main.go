// Command keybind is a standalone X11 key-binding daemon: it grabs the
// key combinations declared in its configuration file on the root
// window and dispatches them to shell commands and root menus.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"keybind/internal/app"
	"keybind/internal/config"
	"keybind/internal/x11"
)

// version is stamped by the build.
var version = "dev"

var (
	flagConfig   string
	flagDisplay  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:     "keybind",
	Short:   "X11 key binding daemon",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "configuration file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&flagDisplay, "display", "", "X display to connect to (default $DISPLAY)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func run() error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(flagLogLevel); err != nil {
		log.Warnf("unknown log level %q, using info", flagLogLevel)
	} else {
		log.SetLevel(level)
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	conn, err := x11.Connect(flagDisplay, log.WithField("component", "x11"))
	if err != nil {
		return err
	}

	a := app.New(conn, cfgPath, log)

	watcher, err := config.NewWatcher(cfgPath, a.Reload, log)
	if err != nil {
		log.Warnf("configuration watcher disabled: %v", err)
	} else {
		defer watcher.Stop()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigc {
			switch sig {
			case syscall.SIGHUP:
				log.Info("SIGHUP received, reloading")
				a.Reload()
			default:
				log.Infof("%v received, shutting down", sig)
				a.Stop()
			}
		}
	}()

	log.Infof("keybind %s starting on display %q", version, displayName())
	return a.Run()
}

func displayName() string {
	if flagDisplay != "" {
		return flagDisplay
	}
	return os.Getenv("DISPLAY")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
