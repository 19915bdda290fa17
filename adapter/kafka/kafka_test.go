package kafka

import (
	"context"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xwire"
)

func TestConfigFromMap(t *testing.T) {
	cfg := ConfigFromMap(map[string]any{
		"brokers":       []any{"k1:9092", "k2:9092"},
		"topic":         "frames",
		"batch_size":    256,
		"batch_timeout": "500ms",
		"required_acks": -1,
		"async":         true,
	})
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Brokers)
	assert.Equal(t, "frames", cfg.Topic)
	assert.Equal(t, 256, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchTimeout)
	assert.Equal(t, kafkago.RequireAll, cfg.RequiredAcks)
	assert.True(t, cfg.Async)
}

func TestConfigFromMap_Defaults(t *testing.T) {
	cfg := ConfigFromMap(map[string]any{})
	assert.Equal(t, Defaults().Brokers, cfg.Brokers)
	assert.Equal(t, Defaults().Topic, cfg.Topic)
	assert.Equal(t, Defaults().BatchTimeout, cfg.BatchTimeout)
	assert.Equal(t, kafkago.RequireOne, cfg.RequiredAcks)
}

func TestConfigFromMap_SingleBrokerString(t *testing.T) {
	cfg := ConfigFromMap(map[string]any{"brokers": "solo:9092"})
	assert.Equal(t, []string{"solo:9092"}, cfg.Brokers)
}

func TestNewSink_WriterSetup(t *testing.T) {
	s, err := NewSink(Config{Topic: "frames", Brokers: []string{"k1:9092"}})
	require.NoError(t, err)

	// The writer dials lazily; Close on an unused writer is safe.
	assert.Equal(t, "frames", s.cfg.Topic)
	assert.NoError(t, s.Close(context.Background()))
}

func TestSend_Closed(t *testing.T) {
	s, err := NewSink(Defaults())
	require.NoError(t, err)
	require.NoError(t, s.Close(context.Background()))
	assert.Error(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 1000}))

	// Close is idempotent.
	assert.NoError(t, s.Close(context.Background()))
}

// TestSend_Broker exercises a real broker when one is reachable.
func TestSend_Broker(t *testing.T) {
	conn, err := kafkago.DialContext(context.Background(), "tcp", "localhost:9092")
	if err != nil {
		t.Skipf("Kafka not available: %v", err)
	}
	_ = conn.Close()

	cfg := Defaults()
	cfg.Topic = "xwire-test-frames"
	cfg.AllowAutoTopicCreation = true

	s, err := NewSink(cfg)
	require.NoError(t, err)
	defer s.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, s.Send(ctx, xwire.RenameFrame{Method: "rename", ID: "0xB120", Record: "foo"}))
	assert.Equal(t, uint64(1), s.Sent())
}
