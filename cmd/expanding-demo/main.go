// Command expanding-demo shows expanding hosts in a terminal.
//
// A box of details and a recycling list sit in a column. Keys expand,
// collapse and toggle the focused host, switch between the tween and spring
// drivers, flip orientation and layout direction, and save or restore its
// state. Attributes can be loaded from a YAML or TOML file:
//
//	expanding-demo -config box.toml -log demo.log
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("expanding-demo", flag.ContinueOnError)
	configPath := fs.String("config", "", "attribute file (.yaml, .yml or .toml) applied to the details box")
	logPath := fs.String("log", "", "write logs to this file")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	items := fs.Int("items", 50, "number of list rows")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logging.SetOutput(logOut, *logLevel)

	var cfg *expanding.Config
	if *configPath != "" {
		var err error
		cfg, err = expanding.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}

	sc, err := newScene(cfg, *items)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(sc), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
