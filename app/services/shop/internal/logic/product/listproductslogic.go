package product

import (
	"context"

	"StrideAI/app/services/shop/internal/agent/intent"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/mq"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListProductsLogic {
	return &ListProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListProductsLogic) ListProducts(req *types.ListProductsRequest) (resp *types.ListingResponse, err error) {
	f := intent.FromSelection(intent.Selection{
		Category:    req.Category,
		Activity:    req.Activity,
		Demographic: req.Demographic,
		Featured:    req.Featured,
		MaxPrice:    req.MaxPrice,
	})

	return helper.Listing(l.ctx, l.svcCtx, mq.SourceSelection, "", &f), nil
}
