package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/format"
)

// ReplCommand runs the interactive line-oriented calculator
func ReplCommand(args []string) {
	eng, store := loadEngine()

	fmt.Println("gocalc " + cli.Version + ". Type an expression, 'help', or 'quit'.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("calc> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if handleReplCommand(eng, line) {
			continue
		}

		result, err := eng.EvaluateExpression(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		printResult(result)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
	}

	saveEngine(eng, store)
}

// handleReplCommand dispatches the non-expression REPL words. Returns true
// when line was a command.
func handleReplCommand(eng *calc.Engine, line string) bool {
	switch strings.ToLower(line) {
	case "help":
		fmt.Println(`Expressions use digits, + - * / % ^, parentheses,
sin cos tan log ln sqrt, and the constants PI and E.

Commands:
  m+             add the last result to memory
  m-             subtract the last result from memory
  mr             recall memory
  mc             clear memory
  history        show past calculations, newest first
  clear-history  empty the history
  clear          reset the display and pending equation
  quit           exit`)
	case "m+":
		eng.ApplyMemory(calc.MemoryAdd)
		fmt.Printf("memory = %s\n", format.Canonical(eng.MemoryValue()))
	case "m-":
		eng.ApplyMemory(calc.MemorySubtract)
		fmt.Printf("memory = %s\n", format.Canonical(eng.MemoryValue()))
	case "mr":
		eng.ApplyMemory(calc.MemoryRecall)
		printResult(eng.Display())
	case "mc":
		eng.ApplyMemory(calc.MemoryClear)
		fmt.Println("memory cleared")
	case "history":
		entries := eng.History()
		if len(entries) == 0 {
			fmt.Println("history is empty")
			return true
		}
		for _, e := range entries {
			ts := time.UnixMilli(e.Timestamp).Format("15:04:05")
			fmt.Printf("  [%s] %s = %s\n", ts, e.Expression, e.Result)
		}
	case "clear-history":
		eng.ClearHistory()
		fmt.Println("history cleared")
	case "clear":
		eng.Clear()
	default:
		return false
	}
	return true
}
