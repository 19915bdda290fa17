package xwire

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the file-backed dispatcher configuration. Durations are TOML
// strings in time.ParseDuration format.
//
//	sink = "redis-streams"
//	codec = "json"
//	send_timeout = "5s"
//
//	[sink_config]
//	addr = "localhost:6379"
//	stream = "xwire"
type Config struct {
	Sink        string         `toml:"sink"`
	SinkConfig  map[string]any `toml:"sink_config"`
	Codec       string         `toml:"codec"`
	SendTimeout string         `toml:"send_timeout"`
}

// LoadConfig reads a TOML config file for use with
// DispatcherBuilder.WithConfig.
func LoadConfig(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("xwire: load config %s: %w", path, err)
	}
	return c, nil
}
