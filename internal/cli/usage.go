package cli

import (
	"flag"
	"fmt"
	"os"
)

// Usage prints the usage information for the gocalc command
func Usage() {
	fmt.Fprintf(os.Stderr, `gocalc - interactive calculator engine

Usage: gocalc [options] <command> [arguments]

Commands:
  eval <expression...>
    Evaluate an arithmetic expression and print the result

  press <key...>
    Feed key tokens through the calculator state machine and print
    the resulting display and equation. Keys: digits, '.', ')',
    operators (+ - * / %% ^), '=', 'AC', 'back', memory ops
    (M+ M- MR MC), function keys (sin cos tan log ln sqrt pow2 powY PI E)

  repl
    Interactive line-oriented calculator. Besides expressions it
    accepts: m+ m- mr mc, history, clear-history, clear, quit

  history
    Print the calculation history from the session file

  version
    Show application version

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  # One-shot evaluation
  gocalc eval "2 + 3 * 4"

  # Drive the keypad directly
  gocalc press 7 + 3 =

  # Functions open a pending call; close it with ')'
  gocalc press sqrt 1 6 ")" =

  # Persistent session across runs
  gocalc -session ~/.local/share/gocalc/session.json repl

  # Machine-readable output
  gocalc -json eval "sqrt(16)"
`)
}
