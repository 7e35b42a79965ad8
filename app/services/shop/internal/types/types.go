// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type Product struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Demographic  string   `json:"demographic"`
	Activity     string   `json:"activity"`
	Images       []string `json:"images"`
	Description  string   `json:"description,omitempty"`
	Features     []string `json:"features,omitempty"`
	IsNew        bool     `json:"isNew,omitempty"`
	IsBestSeller bool     `json:"isBestSeller,omitempty"`
}

type Filter struct {
	Category    string   `json:"category,omitempty"`
	Activity    string   `json:"activity,omitempty"`
	Demographic string   `json:"demographic,omitempty"`
	MaxPrice    float64  `json:"maxPrice,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Featured    string   `json:"featured,omitempty"`
}

type ListingResponse struct {
	Filter   Filter    `json:"filter"`
	Title    string    `json:"title"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
	// Resolved is false when the query could not be interpreted and the full catalog is shown.
	Resolved bool `json:"resolved"`
}

type ListProductsRequest struct {
	Category    string  `form:"category,optional"`
	Activity    string  `form:"activity,optional"`
	Demographic string  `form:"demographic,optional"`
	Featured    string  `form:"featured,optional"`
	MaxPrice    float64 `form:"maxPrice,optional" validate:"gte=0"`
}

type GetProductRequest struct {
	Id string `path:"id" validate:"required"`
}

type GetProductResponse struct {
	Product Product `json:"product"`
}

type SearchTextRequest struct {
	Query string `json:"query,optional" validate:"max=500"`
}

type SearchImageRequest struct {
	// Image is base64, optionally as a data URL.
	Image    string `json:"image" validate:"required"`
	MimeType string `json:"mimeType,optional"`
}

type MenuLink struct {
	Label  string `json:"label"`
	Filter Filter `json:"filter"`
}

type MenuColumn struct {
	Title string     `json:"title"`
	Links []MenuLink `json:"links"`
}

type MenuSection struct {
	Key     string       `json:"key"`
	Columns []MenuColumn `json:"columns"`
}

type MenuResponse struct {
	Sections []MenuSection `json:"sections"`
	Sale     MenuLink      `json:"sale"`
	Sports   []MenuLink    `json:"sports"`
}

type ChatMessage struct {
	Role                string    `json:"role"`
	Text                string    `json:"text"`
	RecommendedProducts []Product `json:"recommendedProducts"`
	Suggestions         []string  `json:"suggestions"`
	IsError             bool      `json:"isError"`
}

type ConversationResponse struct {
	Messages []ChatMessage `json:"messages"`
	Awaiting bool          `json:"awaiting"`
	Offline  bool          `json:"offline"`
}

type SubmitMessageRequest struct {
	Text string `json:"text,optional" validate:"max=2000"`
}
