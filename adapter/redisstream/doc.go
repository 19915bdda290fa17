package redisstream

// Package redisstream provides a Redis Streams sink adapter for xwire.
//
// Sink name: "redis-streams"
//
// Minimal config keys:
// - addr: "host:port" (default "127.0.0.1:6379")
// - stream: stream name to append frames to (default "xwire")
// - max_len_approx: approximate MAXLEN trimming, 0 disables (default 0)
// - tls: enable TLS (default false)
//
// Example builder usage:
//
//	d, _ := xwire.NewDispatcherBuilder().
//	    WithSink(redisstream.SinkName, map[string]any{
//	        "addr":           "localhost:6379",
//	        "stream":         "frontend-frames",
//	        "max_len_approx": 100000,
//	    }).
//	    Build()
