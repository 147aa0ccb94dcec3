package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// --- open_session ---

type OpenSessionInput struct {
	Path  string `json:"path" jsonschema:"path to the session snapshot file"`
	Watch bool   `json:"watch,omitempty" jsonschema:"reload the engine when another process rewrites the file"`
}

type OpenSessionOutput struct {
	StateResult
	Path   string `json:"path"`
	Loaded bool   `json:"loaded"`
}

// --- save_session ---

type SaveSessionInput struct{}

type SaveSessionOutput struct {
	Path string `json:"path"`
}

// --- session_status ---

type SessionStatusInput struct{}

type SessionStatusOutput struct {
	Open bool   `json:"open"`
	Path string `json:"path,omitempty"`
}

func registerSessionTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "open_session",
		Description: "Attach a session snapshot file, loading it if it exists. With watch, external rewrites reload the engine.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in OpenSessionInput) (*mcpsdk.CallToolResult, any, error) {
		loaded, err := state.OpenSession(ctx, in.Path, in.Watch)
		if err != nil {
			return errResult(err), nil, nil
		}

		state.RLock()
		defer state.RUnlock()
		out := OpenSessionOutput{
			StateResult: stateResult(state.Engine()),
			Path:        in.Path,
			Loaded:      loaded,
		}
		return textResult(out), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "save_session",
		Description: "Persist the engine state to the attached session file.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SaveSessionInput) (*mcpsdk.CallToolResult, any, error) {
		if err := state.SaveSession(); err != nil {
			return errResult(err), nil, nil
		}
		return textResult(SaveSessionOutput{Path: state.SessionPath()}), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "session_status",
		Description: "Return whether a session file is attached and its path.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SessionStatusInput) (*mcpsdk.CallToolResult, any, error) {
		path := state.SessionPath()
		return textResult(SessionStatusOutput{Open: path != "", Path: path}), nil, nil
	})
}
