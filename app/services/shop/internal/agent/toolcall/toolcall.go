// Package toolcall reads structured payloads out of chat model replies.
package toolcall

import (
	"strings"

	"github.com/cloudwego/eino/schema"
)

// Payload returns the arguments of the first call to toolName. Models that ignore a forced tool
// choice and answer inline get their first JSON object used instead. Empty when neither exists.
func Payload(msg *schema.Message, toolName string) string {
	if msg == nil {
		return ""
	}
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, toolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return ""
	}
	return TrimJSONBlock(content)
}

// TrimJSONBlock cuts content down to the outermost {...} span, dropping code fences and chatter.
func TrimJSONBlock(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start > end {
		return ""
	}
	return content[start : end+1]
}
