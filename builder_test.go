package xwire

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_RequiresSink(t *testing.T) {
	_, err := NewDispatcherBuilder().Build()
	assert.ErrorIs(t, err, ErrNoSinkConfigured)
}

func TestBuild_UnknownSinkName(t *testing.T) {
	_, err := NewDispatcherBuilder().WithSink("nope", nil).Build()
	var unknown ErrUnknownSink
	assert.ErrorAs(t, err, &unknown)
}

func TestBuild_UnknownCodecName(t *testing.T) {
	_, err := NewDispatcherBuilder().
		WithSinkInstance(&captureSink{}).
		WithCodec("protobuf").
		Build()
	assert.Error(t, err)
}

func TestBuild_Defaults(t *testing.T) {
	d, err := NewDispatcherBuilder().WithSinkInstance(&captureSink{}).Build()
	require.NoError(t, err)
	defer func() { _ = d.Close(context.Background()) }()

	assert.Equal(t, "json", d.Codec().Name())
}

func TestNew_ReturnsCloser(t *testing.T) {
	d, closeFn, err := New(func(db *DispatcherBuilder) {
		db.WithSinkInstance(&captureSink{})
	})
	require.NoError(t, err)
	require.NotNil(t, d)
	require.NoError(t, closeFn())

	assert.ErrorIs(t, d.Dispatch(context.Background(), TagRename, "x"), ErrDispatcherClosed)
}

func TestSinkRegistry(t *testing.T) {
	assert.Error(t, RegisterSink("", func(map[string]any) (Sink, error) { return &captureSink{}, nil }))
	assert.Error(t, RegisterSink("nil-factory", nil))

	require.NoError(t, RegisterSink("capture-registry", func(map[string]any) (Sink, error) {
		return &captureSink{}, nil
	}))

	s, err := NewSink("capture-registry", nil)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestLoadConfig_IntoBuilder(t *testing.T) {
	sink := &captureSink{}
	require.NoError(t, RegisterSink("capture-config", func(cfg map[string]any) (Sink, error) {
		return sink, nil
	}))

	path := filepath.Join(t.TempDir(), "xwire.toml")
	content := `
sink = "capture-config"
codec = "msgpack"
send_timeout = "250ms"

[sink_config]
capacity = 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "capture-config", cfg.Sink)
	assert.Equal(t, "msgpack", cfg.Codec)
	assert.Equal(t, int64(8), cfg.SinkConfig["capacity"])

	d, err := NewDispatcherBuilder().WithConfig(cfg).Build()
	require.NoError(t, err)
	defer func() { _ = d.Close(context.Background()) }()

	assert.Equal(t, "msgpack", d.Codec().Name())

	require.NoError(t, d.Dispatch(context.Background(), TagCount, 2))
	assert.Equal(t, CountFrame{Method: "updateCount", Count: 2000}, sink.last(t))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestWithSendTimeout_IgnoresInvalid(t *testing.T) {
	db := NewDispatcherBuilder().WithSendTimeout(-time.Second)
	assert.Equal(t, 5*time.Second, db.sendTimeout)
}
