package search

import (
	"context"

	"StrideAI/app/common/filter"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/mq"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SearchTextLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSearchTextLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SearchTextLogic {
	return &SearchTextLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SearchText never fails on the model side: an uninterpreted query lists the whole catalog.
func (l *SearchTextLogic) SearchText(req *types.SearchTextRequest) (resp *types.ListingResponse, err error) {
	var f *filter.Filter
	if l.svcCtx.TextExtractor != nil && !l.svcCtx.ModelQuota.Allow(l.ctx) {
		l.Logger.Infow("model quota exhausted, skipping text extraction", logx.Field("query", req.Query))
	} else {
		f = l.svcCtx.TextExtractor.Extract(l.ctx, req.Query)
	}
	if f == nil {
		l.Logger.Infow("text query not interpreted, showing full catalog", logx.Field("query", req.Query))
	}
	return helper.Listing(l.ctx, l.svcCtx, mq.SourceText, req.Query, f), nil
}
