package chat

import "StrideAI/app/dal/catalog"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

const (
	OfflineText = "I'm currently offline (API Key missing). Please browse our catalog manually!"
	ApologyText = "I'm having trouble connecting to the equipment server right now."
)

// Message is one conversation turn. Only assistant messages carry recommendations or suggestions.
type Message struct {
	Role                Role              `json:"role"`
	Text                string            `json:"text"`
	RecommendedProducts []catalog.Product `json:"recommendedProducts,omitempty"`
	Suggestions         []string          `json:"suggestions,omitempty"`
	IsError             bool              `json:"isError,omitempty"`
}

func userMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

func offlineMessage() Message {
	return Message{Role: RoleAssistant, Text: OfflineText, RecommendedProducts: []catalog.Product{}, Suggestions: []string{}}
}

func apologyMessage() Message {
	return Message{Role: RoleAssistant, Text: ApologyText, RecommendedProducts: []catalog.Product{}, Suggestions: []string{}, IsError: true}
}

// DefaultGreeting opens a storefront conversation with three starter suggestions.
func DefaultGreeting() Message {
	return Message{
		Role: RoleAssistant,
		Text: "I can help you find the perfect gear based on your skill level and playing style. What sport are you focusing on today?",
		Suggestions: []string{
			"Best cricket bat for power",
			"Tennis rackets for control",
			"Soccer balls for training",
		},
	}
}

func cloneMessage(m Message) Message {
	cp := m
	if m.RecommendedProducts != nil {
		cp.RecommendedProducts = make([]catalog.Product, 0, len(m.RecommendedProducts))
		for _, p := range m.RecommendedProducts {
			cp.RecommendedProducts = append(cp.RecommendedProducts, p.Clone())
		}
	}
	if m.Suggestions != nil {
		cp.Suggestions = append([]string{}, m.Suggestions...)
	}
	return cp
}
