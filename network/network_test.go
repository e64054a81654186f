package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/status"
)

func newTestGame(t *testing.T) *engine.Game {
	t.Helper()
	state := arena.NewState(6, arena.DefaultDefaults())
	g, err := engine.NewGame(engine.DefaultConfig(), state, arena.NewObstaclePool())
	require.NoError(t, err)
	return g
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) *Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, frame, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, kind)
	snap, err := Decode(frame)
	require.NoError(t, err)
	return snap
}

func TestSnapshotOf(t *testing.T) {
	g := newTestGame(t)
	s := g.State()
	s.Slots[2].Add(g.Pool().Acquire(0.5, 0.1))
	s.Slots[2].Add(g.Pool().Acquire(0.8, 0.2))
	s.Slots[4].Width = 0
	s.Render.Rotation = 0.25
	g.Restart()
	s.Slots[1].Add(g.Pool().Acquire(0.6, 0.05))
	g.Step(17 * time.Millisecond)

	snap := SnapshotOf(g)
	assert.Equal(t, ProtocolVersion, snap.Version)
	assert.Equal(t, uint64(1), snap.Tick)
	assert.True(t, snap.Running)
	assert.Equal(t, int64(17), snap.PlayTimeMS)
	require.Len(t, snap.Slots, 6)
	assert.Equal(t, 1.0, snap.Slots[4].Width, "restart restores widths")
	require.Len(t, snap.Slots[1].Obstacles, 1)
	assert.InDelta(t, 0.6-s.ObstacleSpeed, snap.Slots[1].Obstacles[0][0], 1e-12)
	assert.Equal(t, 0.05, snap.Slots[1].Obstacles[0][1])
	assert.Empty(t, snap.Slots[2].Obstacles)
}

func TestEncodeDecode(t *testing.T) {
	snap := &Snapshot{
		Version:    ProtocolVersion,
		Tick:       42,
		Screen:     "level-1",
		Running:    true,
		Position:   0.3,
		Zoom:       1.1,
		PlayTimeMS: 1234,
		Slots:      []SlotSnapshot{{Width: 1, Obstacles: [][2]float64{{0.5, 0.1}}}, {Width: 0.5, Obstacles: [][2]float64{{1, 0.2}, {1.4, 0.2}}}},
	}
	frame, err := Encode(snap)
	require.NoError(t, err)

	got, err := Decode(frame)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestDecodeRejectsVersion(t *testing.T) {
	frame, err := Encode(&Snapshot{Version: ProtocolVersion + 1})
	require.NoError(t, err)

	_, err = Decode(frame)
	assert.True(t, errors.Is(err, ErrProtocolVersion))

	_, err = Decode([]byte{0xc1})
	assert.Error(t, err)
}

func TestHubPublish(t *testing.T) {
	reg := status.NewRegistry()
	hub := NewHub(DefaultConfig(), zerolog.Nop(), reg)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(2), reg.Ints.Get(status.KeySpectators).Load())

	snap := &Snapshot{Version: ProtocolVersion, Tick: 7, Running: true}
	require.NoError(t, hub.Publish(snap))

	assert.Equal(t, uint64(7), readSnapshot(t, a).Tick)
	assert.Equal(t, uint64(7), readSnapshot(t, b).Tick)
	assert.Equal(t, uint64(1), hub.Published())
}

func TestHubDropsDisconnected(t *testing.T) {
	reg := status.NewRegistry()
	hub := NewHub(DefaultConfig(), zerolog.Nop(), reg)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 5*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 5*time.Millisecond)
	assert.Zero(t, reg.Ints.Get(status.KeySpectators).Load())
}

func TestHubMaxPeers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPeers = 1
	hub := NewHub(cfg, zerolog.Nop(), nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 5*time.Millisecond)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestObserveThrottles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BroadcastEvery = 3
	hub := NewHub(cfg, zerolog.Nop(), nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	g := newTestGame(t)
	hook := hub.Observe(g, func() string { return "title" })

	// Nobody watching: nothing is encoded
	for range 3 {
		g.Step(17 * time.Millisecond)
		hook(17 * time.Millisecond)
	}
	assert.Zero(t, hub.Published())

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 5*time.Millisecond)

	for range 6 {
		g.Step(17 * time.Millisecond)
		hook(17 * time.Millisecond)
	}
	assert.Equal(t, uint64(2), hub.Published())

	first := readSnapshot(t, conn)
	assert.Equal(t, uint64(6), first.Tick)
	assert.Equal(t, "title", first.Screen)
	assert.Equal(t, uint64(9), readSnapshot(t, conn).Tick)
}

func TestTransportLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	hub := NewHub(cfg, zerolog.Nop(), nil)
	tr := NewTransport(cfg, hub, zerolog.Nop())

	require.NoError(t, tr.Start())
	assert.True(t, errors.Is(tr.Start(), ErrTransportActive))

	url := "ws://" + tr.Addr() + cfg.Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, tr.Stop(ctx))
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 5*time.Millisecond)
	assert.NoError(t, tr.Stop(ctx), "second stop is a no-op")
}
