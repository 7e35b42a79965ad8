package product

import (
	"context"

	"StrideAI/app/dal/catalog"
	"StrideAI/app/services/shop/internal/agent/intent"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type MenuLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMenuLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MenuLogic {
	return &MenuLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MenuLogic) Menu() (resp *types.MenuResponse, err error) {
	sports := make([]types.MenuLink, 0, len(catalog.Activities))
	for _, a := range catalog.Activities {
		sports = append(sports, helper.ToMenuLink(intent.MenuLink{Label: string(a), Filter: intent.SportFilter(a)}))
	}

	resp = &types.MenuResponse{
		Sections: helper.ToMenuSections(intent.Menu()),
		Sale:     helper.ToMenuLink(intent.MenuLink{Label: "Sale", Filter: intent.SaleFilter()}),
		Sports:   sports,
	}
	return
}
