package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xwire"
)

func TestSink_RecordsFrames(t *testing.T) {
	s := NewSink(Config{})

	require.NoError(t, s.Send(context.Background(), xwire.RenameFrame{Method: "rename", ID: "0xB120", Record: "foo"}))
	require.NoError(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 2000}))

	frames := s.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, xwire.RenameFrame{Method: "rename", ID: "0xB120", Record: "foo"}, frames[0])
	assert.Equal(t, xwire.CountFrame{Method: "updateCount", Count: 2000}, frames[1])
	assert.Equal(t, uint64(2), s.Accepted())
}

func TestSink_CapacityEvictsOldest(t *testing.T) {
	s := NewSink(Config{Capacity: 2})

	require.NoError(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 1000}))
	require.NoError(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 2000}))
	require.NoError(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 3000}))

	frames := s.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, xwire.CountFrame{Method: "updateCount", Count: 2000}, frames[0])
	assert.Equal(t, xwire.CountFrame{Method: "updateCount", Count: 3000}, frames[1])
}

func TestSink_FailOnFull(t *testing.T) {
	s := NewSink(Config{Capacity: 1, FailOnFull: true})

	require.NoError(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 1000}))
	assert.Error(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 2000}))
	assert.Equal(t, 1, s.Len())
}

func TestSink_ClosedRejectsSends(t *testing.T) {
	s := NewSink(Config{})
	require.NoError(t, s.Close(context.Background()))
	assert.Error(t, s.Send(context.Background(), xwire.CountFrame{Method: "updateCount", Count: 1000}))
}

func TestSink_CanceledContext(t *testing.T) {
	s := NewSink(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, s.Send(ctx, xwire.CountFrame{Method: "updateCount", Count: 1000}))
	assert.Zero(t, s.Len())
}

func TestConfigFromMap(t *testing.T) {
	cfg := ConfigFromMap(map[string]any{
		"capacity":     int64(16),
		"fail_on_full": true,
	})
	assert.Equal(t, 16, cfg.Capacity)
	assert.True(t, cfg.FailOnFull)

	cfg = ConfigFromMap(map[string]any{})
	assert.Equal(t, 0, cfg.Capacity)
	assert.False(t, cfg.FailOnFull)
}

// End-to-end through the registry, the builder and the facade.
func TestDispatcher_EndToEnd(t *testing.T) {
	d, err := xwire.NewDispatcherBuilder().
		WithSink(SinkName, map[string]any{"capacity": 64}).
		Build()
	require.NoError(t, err)
	defer func() { _ = d.Close(context.Background()) }()

	require.NoError(t, d.Dispatch(context.Background(), xwire.TagRename, "foo"))
	require.NoError(t, d.Dispatch(context.Background(), xwire.TagRename))
	require.NoError(t, d.Dispatch(context.Background(), xwire.TagCount, 2))

	require.Error(t, d.Dispatch(context.Background(), xwire.TagCount))
	require.Error(t, d.Dispatch(context.Background(), xwire.TagRename, 2))
	require.Error(t, d.Dispatch(context.Background(), "unknown", 41))

	m := d.GetMetrics()
	assert.Equal(t, uint64(3), m.Forwarded)
	assert.Equal(t, uint64(3), m.Rejected)
}

func TestUse_InstallsDefault(t *testing.T) {
	d := Use(Config{Capacity: 8})
	defer func() { _ = d.Close(context.Background()) }()

	require.NoError(t, xwire.Dispatch(context.Background(), xwire.TagCount, 2))
	require.NoError(t, xwire.Send(context.Background(), xwire.Rename("foo")))

	assert.Equal(t, uint64(2), d.GetMetrics().Forwarded)
}
