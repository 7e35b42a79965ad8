package intent

import (
	"encoding/json"
	"fmt"

	"StrideAI/app/common/filter"
	"StrideAI/app/dal/catalog"
	"StrideAI/app/services/shop/internal/agent/toolcall"

	"github.com/cloudwego/eino/schema"
)

// wireFilter mirrors the tool schemas. Field types are enforced by the decoder; values are not trusted.
type wireFilter struct {
	Category    string   `json:"category"`
	Activity    string   `json:"activity"`
	Demographic string   `json:"demographic"`
	MaxPrice    float64  `json:"maxPrice"`
	Keywords    []string `json:"keywords"`
}

func decodeFilter(msg *schema.Message, toolName string) (*filter.Filter, error) {
	if msg == nil {
		return nil, fmt.Errorf("empty message")
	}

	payload := toolcall.Payload(msg, toolName)
	if payload == "" {
		return nil, fmt.Errorf("search filter payload missing")
	}

	var raw wireFilter
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal search filter: %w", err)
	}

	f := filter.Filter{
		Category:    catalog.ParseCategory(raw.Category),
		Activity:    catalog.ParseActivity(raw.Activity),
		Demographic: catalog.ParseDemographic(raw.Demographic),
		MaxPrice:    raw.MaxPrice,
		Keywords:    raw.Keywords,
	}.Normalize()
	return &f, nil
}
