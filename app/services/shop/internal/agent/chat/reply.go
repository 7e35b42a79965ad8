package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"StrideAI/app/common/consts/biz"
	"StrideAI/app/dal/catalog"
	"StrideAI/app/services/shop/internal/agent/toolcall"

	"github.com/cloudwego/eino/schema"
)

// wireReply is the recommendation payload before hydration.
type wireReply struct {
	Text                  string   `json:"text"`
	RecommendedProductIds []string `json:"recommendedProductIds"`
	Suggestions           []string `json:"suggestions"`
}

func decodeReply(msg *schema.Message) (*wireReply, error) {
	if msg == nil {
		return nil, fmt.Errorf("empty message")
	}

	payload := toolcall.Payload(msg, recommendToolName)
	if payload == "" {
		return nil, fmt.Errorf("recommendation payload missing")
	}

	var reply wireReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return nil, fmt.Errorf("unmarshal recommendation: %w", err)
	}
	reply.Text = strings.TrimSpace(reply.Text)
	if reply.Text == "" {
		return nil, fmt.Errorf("recommendation text missing")
	}
	return &reply, nil
}

// hydrate resolves ids against the catalog in order, silently dropping unknown and repeated ids.
func hydrate(store catalog.Store, ids []string) []catalog.Product {
	products := make([]catalog.Product, 0, biz.MaxRecommendations)
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if len(products) == biz.MaxRecommendations {
			break
		}
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		p, ok := store.ByID(id)
		if !ok {
			continue
		}
		seen[id] = struct{}{}
		products = append(products, p)
	}
	return products
}

// capSuggestions passes suggestions through as sent, only enforcing the cap.
func capSuggestions(suggestions []string) []string {
	if len(suggestions) > biz.MaxSuggestions {
		suggestions = suggestions[:biz.MaxSuggestions]
	}
	return append(make([]string, 0, len(suggestions)), suggestions...)
}
