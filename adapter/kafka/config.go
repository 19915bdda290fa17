package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// Config for the Kafka sink.
type Config struct {
	// Brokers to connect to.
	//
	// Default: localhost:9092
	Brokers []string

	// Topic frames are produced to.
	//
	// Default: "xwire"
	Topic string

	// Limit on how many attempts will be made to deliver a record.
	//
	// Default: 10.
	MaxAttempts int

	// Limit on how many records are buffered before being sent to a
	// partition.
	//
	// Default: 100.
	BatchSize int

	// Time limit on how often incomplete batches are flushed.
	//
	// Default: 1s.
	BatchTimeout time.Duration

	// Timeout for write operations performed by the writer.
	//
	// Default: 10s.
	WriteTimeout time.Duration

	// Number of acknowledges from partition replicas required before a
	// produce request is considered complete.
	//
	// Default: RequireOne.
	RequiredAcks kafka.RequiredAcks

	// Async makes writes never block; delivery errors are not reported.
	//
	// Default: false (a frame forward reports its error).
	Async bool

	// AllowAutoTopicCreation notifies the writer to create the topic if
	// missing.
	AllowAutoTopicCreation bool
}

// Defaults returns a default Kafka sink config.
func Defaults() Config {
	return Config{
		Brokers:      []string{"localhost:9092"},
		Topic:        "xwire",
		MaxAttempts:  10,
		BatchSize:    100,
		BatchTimeout: time.Second,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
}

// toMap converts typed Config into the generic map expected by the sink factory.
func (c Config) toMap() map[string]any {
	return map[string]any{
		"brokers":                   c.Brokers,
		"topic":                     c.Topic,
		"max_attempts":              c.MaxAttempts,
		"batch_size":                c.BatchSize,
		"batch_timeout":             c.BatchTimeout,
		"write_timeout":             c.WriteTimeout,
		"required_acks":             int(c.RequiredAcks),
		"async":                     c.Async,
		"allow_auto_topic_creation": c.AllowAutoTopicCreation,
	}
}

// ConfigFromMap safely converts cfg into Config with defaults.
func ConfigFromMap(cfg map[string]any) Config {
	getString := func(k, d string) string {
		if v, ok := cfg[k].(string); ok && v != "" {
			return v
		}
		return d
	}
	getInt := func(k string, d int) int {
		switch v := cfg[k].(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
		return d
	}
	getBool := func(k string, d bool) bool {
		if v, ok := cfg[k].(bool); ok {
			return v
		}
		return d
	}
	getDur := func(k string, d time.Duration) time.Duration {
		switch v := cfg[k].(type) {
		case time.Duration:
			return v
		case string:
			if p, err := time.ParseDuration(v); err == nil {
				return p
			}
		case float64:
			return time.Duration(v)
		}
		return d
	}
	getStrings := func(k string, d []string) []string {
		switch v := cfg[k].(type) {
		case []string:
			if len(v) > 0 {
				return v
			}
		case []any:
			out := make([]string, 0, len(v))
			for _, e := range v {
				if s, ok := e.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if v != "" {
				return []string{v}
			}
		}
		return d
	}

	def := Defaults()
	return Config{
		Brokers:                getStrings("brokers", def.Brokers),
		Topic:                  getString("topic", def.Topic),
		MaxAttempts:            getInt("max_attempts", def.MaxAttempts),
		BatchSize:              getInt("batch_size", def.BatchSize),
		BatchTimeout:           getDur("batch_timeout", def.BatchTimeout),
		WriteTimeout:           getDur("write_timeout", def.WriteTimeout),
		RequiredAcks:           kafka.RequiredAcks(getInt("required_acks", int(def.RequiredAcks))),
		Async:                  getBool("async", false),
		AllowAutoTopicCreation: getBool("allow_auto_topic_creation", false),
	}
}
