package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/mamaar/gocalc/internal/cli"
)

// HistoryCommand prints the calculation history from the session file
func HistoryCommand(args []string) {
	if cli.SessionPath(cli.GlobalConfig) == "" {
		fmt.Fprintf(os.Stderr, "No session configured; pass -session or set it in the config file\n")
		os.Exit(1)
	}

	eng, _ := loadEngine()
	entries := eng.History()

	if *cli.GlobalFlags.Json {
		OutputJSON(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
		return
	}

	if len(entries) == 0 {
		fmt.Println("History is empty")
		return
	}
	for _, e := range entries {
		ts := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04:05")
		fmt.Printf("[%s] %s = %s\n", ts, e.Expression, e.Result)
	}
}
