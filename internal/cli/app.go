package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// App represents the gocalc application
type App struct {
	flags  *Flags
	config *Config
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// Initialize sets up the application with flags and configuration
func (app *App) Initialize() {
	log.SetFlags(0) // Remove timestamp from log output
	ParseFlags(Usage)
	app.flags = GlobalFlags

	path := *app.flags.Config
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	app.config = cfg
	GlobalConfig = cfg
}

// Config returns the loaded configuration.
func (app *App) Config() *Config {
	return app.config
}

// Run executes the application logic with the provided runner
func (app *App) Run(runner *Runner) {
	// Handle version flag
	if *app.flags.Version {
		ShowVersion()
		return
	}

	// Get command arguments
	args := flag.Args()
	if len(args) < 1 {
		Usage()
		os.Exit(1)
	}

	// Execute the command
	runner.Execute(args[0], args[1:])
}
