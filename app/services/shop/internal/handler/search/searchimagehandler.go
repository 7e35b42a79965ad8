// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package search

import (
	"net/http"

	"StrideAI/app/common/response"
	"StrideAI/app/services/shop/internal/logic/search"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func SearchImageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SearchImageRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, response.ParamError(err))
			return
		}

		l := search.NewSearchImageLogic(r.Context(), svcCtx)
		resp, err := l.SearchImage(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
