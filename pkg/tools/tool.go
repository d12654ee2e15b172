// Package tools provides interfaces and shared helpers for MCP tools
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go"
)

// ErrInvalidParams marks tool arguments that could not be extracted.
var ErrInvalidParams = errors.New("invalid parameters")

// Tool defines the interface for all tools in the system
type Tool interface {
	// Handle returns the underlying MCP tool
	Handle() mcp.Tool

	// ToOpenAITool converts the tool to OpenAI format
	ToOpenAITool() openai.ChatCompletionToolParam

	// Handler processes tool requests and returns responses
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

	// Name returns the name of the tool
	Name() string
}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	name   string
	handle mcp.Tool
	args   any
}

// NewBaseTool creates a new BaseTool. args is a pointer to the struct that
// describes the tool arguments; its jsonschema tags feed ToOpenAITool.
func NewBaseTool(handle mcp.Tool, args any) *BaseTool {
	return &BaseTool{
		name:   handle.Name,
		handle: handle,
		args:   args,
	}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// Name returns the name of the tool
func (b *BaseTool) Name() string {
	return b.name
}

// ToOpenAITool renders the tool as an OpenAI function definition.
func (b *BaseTool) ToOpenAITool() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Type: openai.F(openai.ChatCompletionToolTypeFunction),
		Function: openai.F(openai.FunctionDefinitionParam{
			Name:        openai.String(b.name),
			Description: openai.String(b.handle.Description),
			Parameters:  openai.F(ReflectParameters(b.args)),
		}),
	}
}

// ReflectParameters builds an inline JSON schema for an argument struct.
func ReflectParameters(args any) openai.FunctionParameters {
	reflector := &jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	params := openai.FunctionParameters{"type": "object"}

	buf, err := json.Marshal(reflector.Reflect(args))
	if err != nil {
		return params
	}

	if err := json.Unmarshal(buf, &params); err != nil {
		return openai.FunctionParameters{"type": "object"}
	}

	delete(params, "$schema")
	delete(params, "$id")

	return params
}

// InvalidParams wraps an argument extraction error with ErrInvalidParams
func InvalidParams(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidParams, err)
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// GetOpenAITools converts a slice of tools to OpenAI format
func GetOpenAITools(tools []Tool) []openai.ChatCompletionToolParam {
	openaiTools := make([]openai.ChatCompletionToolParam, len(tools))
	for i, tool := range tools {
		openaiTools[i] = tool.ToOpenAITool()
	}
	return openaiTools
}
