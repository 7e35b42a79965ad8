// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	chat "StrideAI/app/services/shop/internal/handler/chat"
	product "StrideAI/app/services/shop/internal/handler/product"
	search "StrideAI/app/services/shop/internal/handler/search"
	"StrideAI/app/services/shop/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/products",
					Handler: product.ListProductsHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/products/:id",
					Handler: product.GetProductHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/menu",
					Handler: product.MenuHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/search/text",
					Handler: search.SearchTextHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/search/image",
					Handler: search.SearchImageHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api"),
		rest.WithMaxBytes(maxImageBytes),
		rest.WithTimeout(modelRouteTimeout(serverCtx.Config)),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/chat",
					Handler: chat.GetConversationHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/chat/messages",
					Handler: chat.SubmitMessageHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/chat",
					Handler: chat.ResetConversationHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api"),
		rest.WithTimeout(modelRouteTimeout(serverCtx.Config)),
	)
}
