package main

import (
	"flag"
	"fmt"

	"StrideAI/app/common/response"
	"StrideAI/app/common/validator"
	"StrideAI/app/services/shop/internal/config"
	"StrideAI/app/services/shop/internal/handler"
	"StrideAI/app/services/shop/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/shop-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	httpx.SetErrorHandlerCtx(response.ErrorHandler)
	httpx.SetValidator(validator.New())
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
