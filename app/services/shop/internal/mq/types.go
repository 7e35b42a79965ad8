package mq

// IntentEvent records one resolved listing request for search analytics.
type IntentEvent struct {
	SessionId   string   `json:"session_id"`
	Source      string   `json:"source"`
	Query       string   `json:"query,omitempty"`
	Category    string   `json:"category,omitempty"`
	Activity    string   `json:"activity,omitempty"`
	Demographic string   `json:"demographic,omitempty"`
	MaxPrice    float64  `json:"max_price,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Featured    string   `json:"featured,omitempty"`
	// Resolved is false when the extractor gave up and the full catalog was shown.
	Resolved    bool  `json:"resolved"`
	ResultCount int   `json:"result_count"`
	Ts          int64 `json:"ts"`
}

const (
	SourceSelection = "selection"
	SourceText      = "text"
	SourceImage     = "image"
)
