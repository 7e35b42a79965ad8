package mq

import (
	"context"
	"testing"

	"StrideAI/app/services/shop/internal/config"

	"github.com/segmentio/kafka-go"
)

func TestPublisher_UnconfiguredIsNoop(t *testing.T) {
	cases := []config.KafkaConf{
		{},
		{Broker: []string{"localhost:9092"}},
		{IntentTopic: "shop.intent"},
	}
	for _, c := range cases {
		p := NewPublisher(c)
		if p.Enabled() {
			t.Fatalf("expected disabled publisher for %+v", c)
		}
		if err := p.PublishIntent(context.Background(), IntentEvent{Source: SourceText}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		p.PublishIntentAsync(context.Background(), IntentEvent{Source: SourceText})
		if err := p.Close(); err != nil {
			t.Fatal(err)
		}
	}

	var nilPublisher *Publisher
	if nilPublisher.Enabled() || nilPublisher.Close() != nil {
		t.Fatal("nil publisher must be a no-op")
	}
}

func TestPublisher_Configured(t *testing.T) {
	p := NewPublisher(config.KafkaConf{Broker: []string{"localhost:9092"}, IntentTopic: "shop.intent"})
	defer p.Close()
	if !p.Enabled() {
		t.Fatal("expected enabled publisher")
	}
	if p.writer.Topic != "shop.intent" {
		t.Fatalf("unexpected topic %q", p.writer.Topic)
	}
}

func TestPublisher_SessionKeepsOnePartition(t *testing.T) {
	p := NewPublisher(config.KafkaConf{Broker: []string{"localhost:9092"}, IntentTopic: "shop.intent"})
	defer p.Close()

	partitions := []int{0, 1, 2, 3}
	for _, session := range []string{"session-a", "session-b", "session-c"} {
		used := make(map[int]struct{})
		for i := 0; i < 8; i++ {
			msg := kafka.Message{Key: []byte(session), Value: []byte{byte(i)}}
			used[p.writer.Balancer.Balance(msg, partitions...)] = struct{}{}
		}
		if len(used) != 1 {
			t.Fatalf("events of %s spread over partitions %v", session, used)
		}
	}
}
