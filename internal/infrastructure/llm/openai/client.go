// Package openai provides an LLMClient implementation using OpenAI.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/ports"
	"github.com/ersonp/datask-core/internal/infrastructure/config"
)

const classifierPrompt = `You are an assistant that answers Japanese or English questions about office seating and usage. For each question do exactly one of the following:
- call to_sql with a single read-only SELECT statement answering the question from the tables below
- call show_employee_chart when the user asks for one employee's monthly usage graph
- call show_seatmap when the user asks which seats are free or occupied right now
- reply with plain text when the question fits none of the above

Use ONLY the tables and fields listed below. Never generate INSERT/UPDATE/DELETE or any other mutating statement. Generate exactly one statement and never end it with a semicolon.

`

// Client implements the LLMClient interface using OpenAI.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new OpenAI LLM client.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	client := openai.NewClient(cfg.APIKey)

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Classify converts a question into a structured decision. The model
// either calls one of the registered functions or answers with plain
// text, which maps to a chat decision.
func (c *Client) Classify(ctx context.Context, question string, catalog entities.Catalog) (*ports.Decision, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: classifierPrompt + catalog.PromptHint(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: question,
			},
		},
		Tools:       classifierTools(),
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		return decisionFromToolCall(msg.ToolCalls[0])
	}
	if text := strings.TrimSpace(msg.Content); text != "" {
		return &ports.Decision{Kind: ports.DecisionChat, Text: text}, nil
	}
	return nil, errors.New("model returned neither a tool call nor text")
}

// classifierTools returns the function schemas registered with the model.
func classifierTools() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "to_sql",
				Description: "Generate a single read-only SELECT statement from the question.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"sql": {"type": "string"}
					},
					"required": ["sql"]
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "show_employee_chart",
				Description: "Request the monthly usage chart for one employee.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"emp_code": {"type": "string", "description": "Canonical employee code, e.g. E10001. Omit when unknown."},
						"name": {"type": "string", "description": "Employee name or name fragment, e.g. 田中"}
					}
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "show_seatmap",
				Description: "Request the current seat map of free and occupied seats.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"show_names": {"type": "boolean", "description": "Include occupant names on occupied seats."}
					}
				}`),
			},
		},
	}
}

// decisionFromToolCall converts one model tool call into a decision.
func decisionFromToolCall(call openai.ToolCall) (*ports.Decision, error) {
	switch call.Function.Name {
	case "to_sql":
		var args struct {
			SQL string `json:"sql"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("parsing to_sql arguments: %w (arguments: %s)", err, call.Function.Arguments)
		}
		return &ports.Decision{Kind: ports.DecisionSQL, SQL: args.SQL}, nil

	case "show_employee_chart":
		var args struct {
			EmpCode string `json:"emp_code"`
			Name    string `json:"name"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("parsing show_employee_chart arguments: %w (arguments: %s)", err, call.Function.Arguments)
		}
		return &ports.Decision{Kind: ports.DecisionChart, EmpCode: args.EmpCode, EmpName: args.Name}, nil

	case "show_seatmap":
		var args struct {
			ShowNames bool `json:"show_names"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("parsing show_seatmap arguments: %w (arguments: %s)", err, call.Function.Arguments)
		}
		return &ports.Decision{Kind: ports.DecisionSeatmap, ShowNames: args.ShowNames}, nil

	default:
		return nil, fmt.Errorf("model called unknown function %q", call.Function.Name)
	}
}
