// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

import (
	"net/http"

	"StrideAI/app/services/shop/internal/logic/product"
	"StrideAI/app/services/shop/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func MenuHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := product.NewMenuLogic(r.Context(), svcCtx)
		resp, err := l.Menu()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
