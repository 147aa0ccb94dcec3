package commands

import (
	"fmt"
	"os"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/format"
)

// PressCommand feeds key tokens through the state machine and prints the
// resulting display state
func PressCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: gocalc press <key...>\n")
		os.Exit(1)
	}

	eng, store := loadEngine()
	for _, tok := range args {
		a, err := calc.ParseKey(tok)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		eng.Apply(a)
	}
	saveEngine(eng, store)

	if *cli.GlobalFlags.Json {
		OutputJSON(map[string]any{
			"display":           eng.Display(),
			"formatted_display": format.Group(eng.Display()),
			"equation":          eng.Equation(),
			"memory":            eng.MemoryValue(),
		})
		return
	}
	if eq := eng.Equation(); eq != "" {
		fmt.Printf("%s\n", eq)
	}
	printResult(eng.Display())
}
