package redisstream

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trickstertwo/xwire"
)

// Adapter: Redis Streams Sink (Strategy + Adapter patterns)

const SinkName = "redis-streams"

func init() {
	if err := xwire.RegisterSink(SinkName, func(cfg map[string]any) (xwire.Sink, error) {
		return NewSink(ConfigFromMap(cfg))
	}); err != nil {
		panic(fmt.Errorf("xwire: failed to register sink %q: %w", SinkName, err))
	}
}

// Sink appends one stream entry per frame via XADD. The entry carries the
// wire method, the codec-encoded body and the codec name, so consumers on
// the remote side can decode without out-of-band agreement.
type Sink struct {
	cfg    Config
	client *redis.Client
	closed atomic.Bool
	sent   atomic.Uint64
}

var _ xwire.Sink = (*Sink)(nil)

// NewSink connects a Redis client and returns the sink.
func NewSink(cfg Config) (*Sink, error) {
	if cfg.Addr == "" {
		cfg.Addr = Defaults().Addr
	}
	if cfg.Stream == "" {
		cfg.Stream = Defaults().Stream
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{ServerName: cfg.TLSServerName}
	}

	return &Sink{
		cfg:    cfg,
		client: redis.NewClient(opts),
	}, nil
}

// Send appends the frame to the configured stream.
func (s *Sink) Send(ctx context.Context, f xwire.Frame) error {
	if s.closed.Load() {
		return errors.New("redis-streams sink is closed")
	}
	if f == nil {
		return errors.New("redis-streams sink: nil frame")
	}

	codec, ok := xwire.CodecFromContext(ctx)
	if !ok || codec == nil {
		codec = xwire.JSONCodec{}
	}

	body, err := xwire.EncodeFrame(codec, f)
	if err != nil {
		return fmt.Errorf("redis-streams: encode frame: %w", err)
	}

	producedAt := time.Now()
	if clk, ok := xwire.ClockFromContext(ctx); ok {
		producedAt = clk.Now()
	}

	args := &redis.XAddArgs{
		Stream: s.cfg.Stream,
		Values: map[string]any{
			fieldMethod:     f.FrameMethod(),
			fieldBody:       body,
			fieldCodec:      codec.Name(),
			fieldProducedAt: producedAt.UnixNano(),
		},
	}
	if s.cfg.MaxLenApprox > 0 {
		args.MaxLen = s.cfg.MaxLenApprox
		args.Approx = true
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("redis-streams: xadd %s: %w", s.cfg.Stream, err)
	}

	s.sent.Add(1)
	return nil
}

// Close releases the Redis client.
func (s *Sink) Close(_ context.Context) error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.client.Close()
}

// Sent returns the number of frames appended since creation.
func (s *Sink) Sent() uint64 { return s.sent.Load() }

// Client exposes the underlying Redis client (testing/advanced use).
func (s *Sink) Client() *redis.Client { return s.client }
