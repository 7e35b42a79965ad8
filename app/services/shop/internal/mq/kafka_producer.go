package mq

import (
	"context"
	"encoding/json"
	"time"

	"StrideAI/app/services/shop/internal/config"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

const publishTimeout = 3 * time.Second

// Publisher sends intent events to Kafka. It is a no-op when no broker or topic is configured.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(c config.KafkaConf) *Publisher {
	if len(c.Broker) == 0 || c.IntentTopic == "" {
		return &Publisher{}
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(c.Broker...),
			Topic:        c.IntentTopic,
			RequiredAcks: kafka.RequireOne,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.writer != nil
}

// PublishIntent sends the event keyed by session so one shopper's events stay ordered.
func (p *Publisher) PublishIntent(ctx context.Context, evt IntentEvent) error {
	if !p.Enabled() {
		return nil
	}
	if evt.Ts == 0 {
		evt.Ts = time.Now().UnixMilli()
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: []byte(evt.SessionId), Value: body}
	return p.writer.WriteMessages(ctx, msg)
}

// PublishIntentAsync publishes in the background; failures are only logged.
func (p *Publisher) PublishIntentAsync(ctx context.Context, evt IntentEvent) {
	if !p.Enabled() {
		return
	}
	parent := context.WithoutCancel(ctx)
	threading.GoSafe(func() {
		ctx, cancel := context.WithTimeout(parent, publishTimeout)
		defer cancel()
		if err := p.PublishIntent(ctx, evt); err != nil {
			logx.WithContext(ctx).Errorw("publish intent event failed",
				logx.Field("source", evt.Source), logx.Field("err", err.Error()))
		}
	})
}

func (p *Publisher) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}
