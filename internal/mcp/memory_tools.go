package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calc"
)

type MemoryInput struct{}

type MemoryOutput struct {
	StateResult
	Memory float64 `json:"memory"`
}

func registerMemoryTools(s *mcpsdk.Server, state *MCPServer) {
	memTool := func(name, description, op string) {
		mcpsdk.AddTool(s, &mcpsdk.Tool{
			Name:        name,
			Description: description,
		}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in MemoryInput) (*mcpsdk.CallToolResult, any, error) {
			state.Lock()
			defer state.Unlock()

			eng := state.Engine()
			eng.ApplyMemory(op)
			out := MemoryOutput{
				StateResult: stateResult(eng),
				Memory:      eng.MemoryValue(),
			}
			return textResult(out), nil, nil
		})
	}

	memTool("memory_add", "Add the current operand to the memory register (M+).", calc.MemoryAdd)
	memTool("memory_subtract", "Subtract the current operand from the memory register (M-).", calc.MemorySubtract)
	memTool("memory_recall", "Recall the memory register into the display (MR).", calc.MemoryRecall)
	memTool("memory_clear", "Reset the memory register to zero (MC).", calc.MemoryClear)
}
