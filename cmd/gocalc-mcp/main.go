package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	internalcli "github.com/mamaar/gocalc/internal/cli"
	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

func main() {
	var (
		sessionFlag = flag.String("session", "", "Session snapshot file to open on startup")
		watchFlag   = flag.Bool("watch", false, "Reload the engine when the session file changes externally")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gocalc-mcp v%s\n", internalcli.Version)
		fmt.Println("Model Context Protocol server for the gocalc calculator engine")
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	// stdout carries the MCP transport; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	state := internalmcp.NewMCPServer(logger)
	defer state.Close()

	ctx := context.Background()
	if *sessionFlag != "" {
		loaded, err := state.OpenSession(ctx, *sessionFlag, *watchFlag)
		if err != nil {
			logger.Error("open session", "path", *sessionFlag, "err", err)
			os.Exit(1)
		}
		logger.Info("session attached", "path", *sessionFlag, "loaded", loaded)
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "gocalc",
		Version: internalcli.Version,
	}, nil)
	internalmcp.RegisterAllTools(server, state)

	logger.Info("starting MCP server on stdio")
	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}

	// Best effort: persist the session on clean shutdown.
	if *sessionFlag != "" {
		if err := state.SaveSession(); err != nil {
			logger.Warn("save session on shutdown", "err", err)
		}
	}
}
