package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
)

// EvalCommand evaluates a single expression and prints the result
func EvalCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: gocalc eval <expression...>\n")
		os.Exit(1)
	}
	expression := strings.Join(args, " ")

	eng, store := loadEngine()
	result, err := eng.EvaluateExpression(expression)
	if err != nil {
		if *cli.GlobalFlags.Json {
			OutputJSON(map[string]any{
				"expression": expression,
				"error":      err.Error(),
			})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	saveEngine(eng, store)

	if *cli.GlobalFlags.Json {
		OutputJSON(map[string]any{
			"expression": expression,
			"result":     result,
		})
		return
	}
	printResult(result)
}
