package toolcall

import (
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestPayload(t *testing.T) {
	tests := []struct {
		name string
		msg  *schema.Message
		want string
	}{
		{"nil message", nil, ""},
		{
			"tool call",
			schema.AssistantMessage("ignored {\"a\":1}", []schema.ToolCall{
				{ID: "1", Function: schema.FunctionCall{Name: "other", Arguments: `{"x":1}`}},
				{ID: "2", Function: schema.FunctionCall{Name: "Submit_Thing", Arguments: ` {"ok":true} `}},
			}),
			`{"ok":true}`,
		},
		{"fenced content", schema.AssistantMessage("```json\n{\"ok\":true}\n```", nil), `{"ok":true}`},
		{"plain text", schema.AssistantMessage("no json here", nil), ""},
		{"empty", schema.AssistantMessage("  ", nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Payload(tt.msg, "submit_thing"); got != tt.want {
				t.Errorf("Payload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrimJSONBlock(t *testing.T) {
	if got := TrimJSONBlock("} backwards {"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := TrimJSONBlock(`prefix {"a":{"b":2}} suffix`); got != `{"a":{"b":2}}` {
		t.Errorf("unexpected block %q", got)
	}
}
