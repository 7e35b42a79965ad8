package svc

import (
	"context"

	"StrideAI/app/common/middleware"
	"StrideAI/app/common/snowflake"
	"StrideAI/app/dal/catalog"
	"StrideAI/app/services/shop/internal/agent/chat"
	"StrideAI/app/services/shop/internal/agent/intent"
	"StrideAI/app/services/shop/internal/config"
	"StrideAI/app/services/shop/internal/mq"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config            config.Config
	SessionMiddleware rest.Middleware

	Catalog catalog.Store

	// nil when the reasoning service is not configured
	TextExtractor  *intent.TextExtractor
	ImageExtractor *intent.ImageExtractor

	Recommender *chat.Recommender
	Sessions    *chat.Registry

	Publisher *mq.Publisher

	// nil when Redis is not configured
	ModelQuota *ModelQuota
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorw("set snowflake node failed", logx.Field("err", err))
		}
	}

	store := catalog.MustLoadStore(c.Catalog.Path)
	logx.Infow("catalog loaded", logx.Field("products", store.Len()), logx.Field("path", c.Catalog.Path))

	sc, err := NewServiceContextWithModels(c, store, newChatModel("chat", c.ChatModel), newChatModel("vision", c.Vision()))
	logx.Must(err)
	return sc
}

// NewServiceContextWithModels wires the service around the given models; nil models disable the
// features that need them.
func NewServiceContextWithModels(c config.Config, store catalog.Store, chatModel, visionModel model.BaseChatModel) (*ServiceContext, error) {
	ctx := context.Background()
	sc := &ServiceContext{
		Config:            c,
		SessionMiddleware: middleware.NewSessionMiddleware(c.Session.Secret).Handle,
		Catalog:           store,
		Publisher:         mq.NewPublisher(c.KafkaConf),
	}

	if chatModel != nil {
		te, err := intent.NewTextExtractor(ctx, chatModel, c.ChatModel.Timeout)
		if err != nil {
			return nil, err
		}
		sc.TextExtractor = te
	}
	if visionModel != nil {
		ie, err := intent.NewImageExtractor(visionModel, c.Vision().Timeout)
		if err != nil {
			return nil, err
		}
		sc.ImageExtractor = ie
	}

	sc.Recommender = chat.NewRecommender(chatModel, store)

	if c.RedisConf.Host != "" {
		rds, err := redis.NewRedis(c.RedisConf)
		if err != nil {
			return nil, err
		}
		sc.ModelQuota = NewModelQuota(c.ModelQuota, rds)
	}

	opts := []chat.Option{chat.WithReplyTimeout(c.Session.ReplyTimeout)}
	if c.Session.Greeting {
		opts = append(opts, chat.WithGreeting(chat.DefaultGreeting()))
	}
	sessions, err := chat.NewRegistry(sc.Recommender, c.Session.TTL, opts...)
	if err != nil {
		return nil, err
	}
	sc.Sessions = sessions

	return sc, nil
}

func (sc *ServiceContext) Close() error {
	return sc.Publisher.Close()
}

func newChatModel(name string, mc config.ModelConf) model.BaseChatModel {
	if mc.APIKey == "" {
		logx.Infow("reasoning service not configured, running offline", logx.Field("model", name))
		return nil
	}

	cfg := &ark.ChatModelConfig{
		BaseURL: mc.BaseUrl,
		APIKey:  mc.APIKey,
		Model:   mc.Model,
	}
	if mc.Timeout > 0 {
		timeout := mc.Timeout
		cfg.Timeout = &timeout
	}

	cm, err := ark.NewChatModel(context.Background(), cfg)
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("model", name), logx.Field("err", err))
		return nil
	}
	logx.Infow("ark chat model initialized", logx.Field("model", name))
	return cm
}
