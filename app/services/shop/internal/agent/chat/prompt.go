package chat

import (
	"fmt"
	"strconv"
	"strings"

	"StrideAI/app/common/consts/biz"
	"StrideAI/app/dal/catalog"

	"github.com/cloudwego/eino/schema"
)

const recommendToolName = "submit_recommendation"

// catalogContext condenses the catalog to one line per product for the system prompt.
func catalogContext(products []catalog.Product) string {
	var sb strings.Builder
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("- ID: %s | Name: %s | Price: $%s | Type: %s | Sport: %s | Features: %s\n",
			p.Id, p.Name, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Category, p.Activity, strings.Join(p.Features, ", ")))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func systemInstruction(catalogCtx string) string {
	return `### 1. ROLE
Act as "StrideAI", a Senior Technical Equipment Specialist at Stride. You are an expert in biomechanics and sports gear.

### 2. CONTEXT
You are assisting a customer. They need help choosing specific equipment from our catalog.
Catalog Data:
` + catalogCtx + `

### 3. TASK
Analyze the user's needs and recommend equipment.
1. Identify the sport and intent.
2. Select 1-3 most relevant Product IDs from the Catalog Data.
3. Explain technically why these products fit.
4. Generate 2-3 short, relevant follow-up questions the user might ask next (e.g., "What about stability?", "Is this good for beginners?").

### 4. GUIDELINES
- Tone: Professional, concise, helpful.
- Only recommend products listed in the Catalog Data, by their exact ID.
- We only sell hard goods (bats, balls, rackets), no shoes/clothes.

### 5. FORMAT
Submit your answer by calling the tool ` + recommendToolName + ` exactly once:
{
  "text": string, // the conversational response, under 50 words
  "recommendedProductIds": string[], // exact Product IDs from the catalog, at most 3
  "suggestions": string[] // 2-3 short follow-up questions, at most 5 words each
}`
}

// transcriptPrompt renders the history as role-prefixed lines.
func transcriptPrompt(history []Message) string {
	var sb strings.Builder
	sb.WriteString("Conversation History:\n")
	for _, m := range history {
		sb.WriteString(strings.ToUpper(string(m.Role)))
		sb.WriteString(": ")
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("\nUser's Latest Input: (Respond by calling ")
	sb.WriteString(recommendToolName)
	sb.WriteString(")")
	return sb.String()
}

func buildRecommendTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: recommendToolName,
		Desc: "Submit the equipment recommendation shown to the shopper",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"text": {
				Type:     schema.String,
				Desc:     "The conversational response, under 50 words",
				Required: true,
			},
			"recommendedProductIds": {
				Type:     schema.Array,
				Desc:     fmt.Sprintf("Exact product IDs from the catalog, at most %d", biz.MaxRecommendations),
				ElemInfo: &schema.ParameterInfo{Type: schema.String},
				Required: true,
			},
			"suggestions": {
				Type:     schema.Array,
				Desc:     fmt.Sprintf("Short follow-up questions the shopper might ask next, at most %d", biz.MaxSuggestions),
				ElemInfo: &schema.ParameterInfo{Type: schema.String},
				Required: true,
			},
		}),
	}
}
