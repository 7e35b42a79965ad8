package chat

import (
	"context"

	"StrideAI/app/common/util"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetConversationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetConversationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetConversationLogic {
	return &GetConversationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetConversationLogic) GetConversation() (resp *types.ConversationResponse, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	session, err := l.svcCtx.Sessions.Session(sessionId)
	if err != nil {
		l.Logger.Errorw("load chat session failed", logx.Field("session", sessionId), logx.Field("err", err.Error()))
		return nil, err
	}

	history, awaiting := session.Snapshot()
	return helper.ToConversation(history, awaiting, !l.svcCtx.Recommender.Available()), nil
}
