package helper

import (
	"context"
	"time"

	"StrideAI/app/common/filter"
	"StrideAI/app/common/util"
	"StrideAI/app/dal/catalog"
	"StrideAI/app/services/shop/internal/agent/chat"
	"StrideAI/app/services/shop/internal/agent/intent"
	"StrideAI/app/services/shop/internal/mq"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"
)

func ToProduct(src catalog.Product) types.Product {
	dst := types.Product{
		Id:           src.Id,
		Name:         src.Name,
		Price:        src.Price,
		Category:     string(src.Category),
		Demographic:  string(src.Demographic),
		Activity:     string(src.Activity),
		Description:  src.Description,
		IsNew:        src.IsNew,
		IsBestSeller: src.IsBestSeller,
	}

	if len(src.Images) > 0 {
		dst.Images = append([]string(nil), src.Images...)
	}
	if len(src.Features) > 0 {
		dst.Features = append([]string(nil), src.Features...)
	}

	return dst
}

func ToProducts(src []catalog.Product) []types.Product {
	dst := make([]types.Product, 0, len(src))
	for _, p := range src {
		dst = append(dst, ToProduct(p))
	}
	return dst
}

func ToFilter(src filter.Filter) types.Filter {
	dst := types.Filter{
		Category:    string(src.Category),
		Activity:    string(src.Activity),
		Demographic: string(src.Demographic),
		MaxPrice:    src.MaxPrice,
		Featured:    string(src.Featured),
	}
	if len(src.Keywords) > 0 {
		dst.Keywords = append([]string(nil), src.Keywords...)
	}
	return dst
}

func ToMenuLink(src intent.MenuLink) types.MenuLink {
	return types.MenuLink{Label: src.Label, Filter: ToFilter(src.Filter)}
}

func ToMenuSections(src []intent.MenuSection) []types.MenuSection {
	dst := make([]types.MenuSection, 0, len(src))
	for _, section := range src {
		columns := make([]types.MenuColumn, 0, len(section.Columns))
		for _, column := range section.Columns {
			links := make([]types.MenuLink, 0, len(column.Links))
			for _, link := range column.Links {
				links = append(links, ToMenuLink(link))
			}
			columns = append(columns, types.MenuColumn{Title: column.Title, Links: links})
		}
		dst = append(dst, types.MenuSection{Key: section.Key, Columns: columns})
	}
	return dst
}

func ToChatMessage(src chat.Message) types.ChatMessage {
	dst := types.ChatMessage{
		Role:                string(src.Role),
		Text:                src.Text,
		RecommendedProducts: ToProducts(src.RecommendedProducts),
		Suggestions:         []string{},
		IsError:             src.IsError,
	}
	if len(src.Suggestions) > 0 {
		dst.Suggestions = append(dst.Suggestions, src.Suggestions...)
	}
	return dst
}

func ToConversation(history []chat.Message, awaiting, offline bool) *types.ConversationResponse {
	messages := make([]types.ChatMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, ToChatMessage(m))
	}
	return &types.ConversationResponse{
		Messages: messages,
		Awaiting: awaiting,
		Offline:  offline,
	}
}

// Listing runs the filter over the catalog. A nil filter (nothing understood) shows everything.
func Listing(ctx context.Context, svcCtx *svc.ServiceContext, source, query string, f *filter.Filter) *types.ListingResponse {
	var effective filter.Filter
	if f != nil {
		effective = f.Normalize()
	}

	products := filter.Apply(svcCtx.Catalog.All(), effective)
	resp := &types.ListingResponse{
		Filter:   ToFilter(effective),
		Title:    filter.Title(effective, query),
		Products: ToProducts(products),
		Count:    len(products),
		Resolved: f != nil,
	}

	sessionId, _ := util.SessionIdFromCtx(ctx)
	svcCtx.Publisher.PublishIntentAsync(ctx, mq.IntentEvent{
		SessionId:   sessionId,
		Source:      source,
		Query:       query,
		Category:    resp.Filter.Category,
		Activity:    resp.Filter.Activity,
		Demographic: resp.Filter.Demographic,
		MaxPrice:    resp.Filter.MaxPrice,
		Keywords:    resp.Filter.Keywords,
		Featured:    resp.Filter.Featured,
		Resolved:    resp.Resolved,
		ResultCount: resp.Count,
		Ts:          time.Now().UnixMilli(),
	})

	return resp
}
