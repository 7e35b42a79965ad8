package intent

import (
	"StrideAI/app/dal/catalog"

	"github.com/cloudwego/eino/schema"
)

const (
	textToolName     = "submit_search_filters"
	imageToolName    = "submit_image_filters"
	textModelNodeKey = "search_filter_model"
)

func withAny(names []string) []string {
	return append(append([]string(nil), names...), catalog.SentinelAny)
}

func enumParams() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"category": {
			Type:     schema.String,
			Desc:     "The product category",
			Enum:     withAny(catalog.CategoryNames()),
			Required: true,
		},
		"activity": {
			Type:     schema.String,
			Desc:     "The sport",
			Enum:     withAny(catalog.ActivityNames()),
			Required: true,
		},
		"demographic": {
			Type:     schema.String,
			Desc:     "Target age group/sizing",
			Enum:     withAny(catalog.DemographicNames()),
			Required: true,
		},
	}
}

func buildTextFilterTool() *schema.ToolInfo {
	params := enumParams()
	params["maxPrice"] = &schema.ParameterInfo{
		Type: schema.Number,
		Desc: "Maximum price mentioned, or 0 if none",
	}
	params["keywords"] = &schema.ParameterInfo{
		Type:     schema.Array,
		Desc:     "Key descriptive words (material, weight, brand)",
		ElemInfo: &schema.ParameterInfo{Type: schema.String},
	}
	return &schema.ToolInfo{
		Name:        textToolName,
		Desc:        "Submit the structured search filters extracted from a shopper's query",
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}
}

func buildImageFilterTool() *schema.ToolInfo {
	params := enumParams()
	params["demographic"].Required = false
	return &schema.ToolInfo{
		Name:        imageToolName,
		Desc:        "Submit the search filters identified from a product photo",
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}
}
