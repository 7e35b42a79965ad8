package svc

import (
	"context"

	"StrideAI/app/services/shop/internal/config"

	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const modelQuotaKey = "shop:model-quota"

// ModelQuota throttles reasoning-service calls. A nil quota allows everything.
type ModelQuota struct {
	limiter *limit.TokenLimiter
}

func NewModelQuota(c config.QuotaConf, store *redis.Redis) *ModelQuota {
	return &ModelQuota{
		limiter: limit.NewTokenLimiter(c.Rate, c.Burst, store, modelQuotaKey),
	}
}

func (q *ModelQuota) Allow(ctx context.Context) bool {
	if q == nil || q.limiter == nil {
		return true
	}
	return q.limiter.AllowCtx(ctx)
}
