package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classbook/config"
)

func TestClient_WriterReuse(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Kafka.Brokers = []string{"localhost:9092"}

	client, ok := New(cfg).(*kafkaClientImpl)
	assert.True(t, ok)

	first := client.writer("bookings")

	assert.Same(t, first, client.writer("bookings"))
	assert.NotSame(t, first, client.writer("audit"))
	assert.Equal(t, "bookings", first.Topic)
}
