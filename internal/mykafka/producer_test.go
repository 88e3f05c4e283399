package mykafka

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_RequiresBrokers(t *testing.T) {
	t.Parallel()

	_, err := NewProducer(nil, nil)
	assert.Error(t, err)
}

func TestPublishEvent_RejectsBadInput(t *testing.T) {
	t.Parallel()

	p, err := NewProducer([]string{"127.0.0.1:1"}, nil)
	require.NoError(t, err)
	defer p.Close()

	assert.Error(t, p.PublishEvent(context.Background(), "", "1", map[string]any{"type": "x"}))
	assert.Error(t, p.PublishEvent(context.Background(), "product_events", "1", map[string]any{"bad": make(chan int)}))
}

func TestNewProducer_WriterSettings(t *testing.T) {
	t.Parallel()

	p, err := NewProducer([]string{"a:9092", "b:9092"}, nil)
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.writer.Async)
	assert.Empty(t, p.writer.Topic)
	assert.IsType(t, &kafka.Hash{}, p.writer.Balancer)
	assert.NotNil(t, p.writer.Addr)
}
