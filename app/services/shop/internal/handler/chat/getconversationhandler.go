// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	"StrideAI/app/services/shop/internal/logic/chat"
	"StrideAI/app/services/shop/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetConversationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := chat.NewGetConversationLogic(r.Context(), svcCtx)
		resp, err := l.GetConversation()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
