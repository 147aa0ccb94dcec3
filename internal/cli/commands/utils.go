package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/format"
	"github.com/mamaar/gocalc/pkg/session"
)

// OutputJSON outputs data as JSON
func OutputJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}

// printResult prints a result honoring the grouping preference.
func printResult(s string) {
	if cli.GroupingEnabled(cli.GlobalConfig) {
		s = format.Group(s)
	}
	fmt.Println(s)
}

// loadEngine creates an engine, restoring the session file when one is
// configured. Returns the engine and the store (nil when no session path).
func loadEngine() (*calc.Engine, *session.Store) {
	eng := calc.NewEngine()
	path := cli.SessionPath(cli.GlobalConfig)
	if path == "" {
		return eng, nil
	}
	store := session.NewStore(path)
	snap, err := store.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
			os.Exit(1)
		}
		return eng, store
	}
	eng.Restore(snap)
	if *cli.GlobalFlags.Verbose {
		fmt.Fprintf(os.Stderr, "Loaded session from %s\n", path)
	}
	return eng, store
}

// saveEngine persists the engine when a session store is attached.
func saveEngine(eng *calc.Engine, store *session.Store) {
	if store == nil {
		return
	}
	if err := store.Save(eng.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		os.Exit(1)
	}
	if *cli.GlobalFlags.Verbose {
		fmt.Fprintf(os.Stderr, "Saved session to %s\n", store.Path())
	}
}
