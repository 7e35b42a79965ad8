package chat

import (
	"context"

	"StrideAI/app/common/consts/errno"
	"StrideAI/app/common/util"
	agentchat "StrideAI/app/services/shop/internal/agent/chat"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SubmitMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSubmitMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitMessageLogic {
	return &SubmitMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SubmitMessage waits for the assistant's reply. If the request goes away first, the reply still
// lands in the session and the returned surface reports it as pending.
func (l *SubmitMessageLogic) SubmitMessage(req *types.SubmitMessageRequest) (resp *types.ConversationResponse, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	session, err := l.svcCtx.Sessions.Session(sessionId)
	if err != nil {
		l.Logger.Errorw("load chat session failed", logx.Field("session", sessionId), logx.Field("err", err.Error()))
		return nil, err
	}

	// a busy session must not spend quota
	if session.State() == agentchat.StateAwaitingReply {
		return nil, agentchat.ErrAwaitingReply
	}
	if l.svcCtx.Recommender.Available() && !l.svcCtx.ModelQuota.Allow(l.ctx) {
		return nil, errors.New(int(errno.ModelQuotaExceeded), "the assistant is busy, try again shortly")
	}

	done, err := session.Submit(l.ctx, req.Text)
	if err != nil {
		return nil, err
	}

	select {
	case <-done:
	case <-l.ctx.Done():
		l.Logger.Infow("request ended before the reply", logx.Field("session", sessionId))
	}

	history, awaiting := session.Snapshot()
	return helper.ToConversation(history, awaiting, !l.svcCtx.Recommender.Available()), nil
}
