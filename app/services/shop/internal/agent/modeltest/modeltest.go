// Package modeltest provides a scripted chat model for tests.
package modeltest

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

var _ model.ToolCallingChatModel = (*Model)(nil)

// Model replays Replies in order (the last one repeats) and records every input.
// When Gate is set, Generate blocks until a value is received from it or ctx is done.
type Model struct {
	Replies []*schema.Message
	Err     error
	Gate    chan struct{}

	mu     sync.Mutex
	inputs [][]*schema.Message
	tools  []*schema.ToolInfo
}

// ToolReply builds an assistant message that calls toolName with args.
func ToolReply(toolName, args string) *schema.Message {
	return schema.AssistantMessage("", []schema.ToolCall{
		{
			ID:   "call-1",
			Type: "function",
			Function: schema.FunctionCall{
				Name:      toolName,
				Arguments: args,
			},
		},
	})
}

func (m *Model) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.mu.Lock()
	idx := len(m.inputs)
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Replies) == 0 {
		return nil, errors.New("no scripted reply")
	}
	if idx >= len(m.Replies) {
		idx = len(m.Replies) - 1
	}
	return m.Replies[idx], nil
}

func (m *Model) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func (m *Model) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tools = tools
	return m, nil
}

// Calls returns how many times Generate was invoked.
func (m *Model) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// Input returns the messages of the i-th call.
func (m *Model) Input(i int) []*schema.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.inputs) {
		return nil
	}
	return m.inputs[i]
}

func (m *Model) BoundTools() []*schema.ToolInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tools
}
