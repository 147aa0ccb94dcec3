package main

import (
	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/cli/commands"
)

func main() {
	app := cli.NewApp()
	app.Initialize()

	runner := cli.NewRunner()
	runner.RegisterCommand("eval", commands.EvalCommand)
	runner.RegisterCommand("press", commands.PressCommand)
	runner.RegisterCommand("repl", commands.ReplCommand)
	runner.RegisterCommand("history", commands.HistoryCommand)
	runner.RegisterCommand("version", commands.VersionCommand)

	app.Run(runner)
}
