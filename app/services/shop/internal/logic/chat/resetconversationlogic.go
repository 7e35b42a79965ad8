package chat

import (
	"context"

	"StrideAI/app/common/util"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ResetConversationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewResetConversationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetConversationLogic {
	return &ResetConversationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ResetConversationLogic) ResetConversation() (resp *types.ConversationResponse, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	session, err := l.svcCtx.Sessions.Session(sessionId)
	if err != nil {
		return nil, err
	}
	if err = session.Reset(); err != nil {
		return nil, err
	}

	history, awaiting := session.Snapshot()
	return helper.ToConversation(history, awaiting, !l.svcCtx.Recommender.Available()), nil
}
