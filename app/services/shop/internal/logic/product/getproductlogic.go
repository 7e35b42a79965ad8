package product

import (
	"context"
	"strings"

	"StrideAI/app/common/consts/errno"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetProductLogic {
	return &GetProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetProductLogic) GetProduct(req *types.GetProductRequest) (resp *types.GetProductResponse, err error) {
	if req == nil || strings.TrimSpace(req.Id) == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid product id")
	}

	p, ok := l.svcCtx.Catalog.ByID(strings.TrimSpace(req.Id))
	if !ok {
		return nil, errors.New(int(errno.ProductNotFound), "product not found")
	}

	resp = &types.GetProductResponse{
		Product: helper.ToProduct(p),
	}

	return
}
