package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	ChatModel   ModelConf
	VisionModel ModelConf `json:",optional"`

	Catalog CatalogConf `json:",optional"`
	Session SessionConf `json:",optional"`

	KafkaConf KafkaConf `json:",optional"`

	// Redis backs the model call quota; without it calls are unthrottled.
	RedisConf  redis.RedisConf `json:",optional"`
	ModelQuota QuotaConf       `json:",optional"`

	// SnowflakeNode pins the session id generator; 0 derives it from the hostname.
	SnowflakeNode int64 `json:",optional"`

	LogConf logx.LogConf
}

// ModelConf describes one reasoning-service endpoint. An empty APIKey disables the model.
type ModelConf struct {
	BaseUrl string        `json:",optional"`
	APIKey  string        `json:",optional"`
	Model   string        `json:",optional"`
	Timeout time.Duration `json:",default=30s"`
}

type CatalogConf struct {
	// Path to a JSON or YAML product file; empty uses the built-in catalog.
	Path string `json:",optional"`
}

type SessionConf struct {
	// Secret signs the session cookie; empty uses a random per-process key.
	Secret       string        `json:",optional"`
	TTL          time.Duration `json:",default=30m"`
	ReplyTimeout time.Duration `json:",default=30s"`
	Greeting     bool          `json:",default=true"`
}

// QuotaConf is a token bucket shared by every instance: Rate calls per second, bursting to Burst.
type QuotaConf struct {
	Rate  int `json:",default=10"`
	Burst int `json:",default=20"`
}

type KafkaConf struct {
	Broker      []string `json:",optional"`
	IntentTopic string   `json:",optional"`
}

// Vision returns the vision model settings, inheriting the credential and endpoint of ChatModel.
func (c Config) Vision() ModelConf {
	vm := c.VisionModel
	if vm.APIKey == "" {
		vm.APIKey = c.ChatModel.APIKey
	}
	if vm.BaseUrl == "" {
		vm.BaseUrl = c.ChatModel.BaseUrl
	}
	if vm.Model == "" {
		vm.Model = c.ChatModel.Model
	}
	if vm.Timeout <= 0 {
		vm.Timeout = c.ChatModel.Timeout
	}
	return vm
}
