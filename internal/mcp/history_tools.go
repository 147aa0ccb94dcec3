package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/history"
)

// --- history_list ---

type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return, newest first (default all retained entries)"`
}

type HistoryListOutput struct {
	Entries []history.Entry `json:"entries"`
	Count   int             `json:"count"`
}

// --- history_recall ---

type HistoryRecallInput struct {
	Index int `json:"index,omitempty" jsonschema:"entry index, 0 is the newest"`
}

// --- history_clear ---

type HistoryClearInput struct{}

func registerHistoryTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "history_list",
		Description: "List past calculations, newest first.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in HistoryListInput) (*mcpsdk.CallToolResult, any, error) {
		state.RLock()
		defer state.RUnlock()

		entries := state.Engine().History()
		if in.Limit > 0 && in.Limit < len(entries) {
			entries = entries[:in.Limit]
		}
		return textResult(HistoryListOutput{Entries: entries, Count: len(entries)}), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "history_recall",
		Description: "Recall a past result into the display.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in HistoryRecallInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		eng := state.Engine()
		entry, ok := eng.HistoryAt(in.Index)
		if !ok {
			return errResult(fmt.Errorf("no history entry at index %d", in.Index)), nil, nil
		}
		eng.Apply(calc.Action{Kind: calc.ActionRecallHistory, Entry: entry})
		return textResult(stateResult(eng)), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "history_clear",
		Description: "Empty the calculation history.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in HistoryClearInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		eng := state.Engine()
		eng.ClearHistory()
		return textResult(stateResult(eng)), nil, nil
	})
}
