// Package network streams read-only arena snapshots to websocket spectators
package network

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/status"
)

// Hub accepts spectators and fans snapshots out to them
// Publish never blocks the caller on a slow spectator
type Hub struct {
	config   *Config
	peers    *PeerManager
	upgrader websocket.Upgrader
	log      zerolog.Logger

	spectators *atomic.Int64
	published  atomic.Uint64
	dropped    atomic.Uint64
}

// NewHub creates a hub; reg may be nil
func NewHub(cfg *Config, log zerolog.Logger, reg *status.Registry) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	h := &Hub{
		config: cfg,
		peers:  NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log:        log,
		spectators: reg.Ints.Get(status.KeySpectators),
	}
	h.peers.SetHandlers(h.onConnect, h.onDisconnect)
	return h
}

// ServeHTTP upgrades the request to a spectator connection
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.peers.Full() {
		http.Error(w, ErrMaxPeers.Error(), http.StatusServiceUnavailable)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug().Err(err).Str("remote", r.RemoteAddr).Msg("spectator upgrade failed")
		return
	}
	if _, err := h.peers.Add(conn); err != nil {
		h.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("spectator rejected")
	}
}

func (h *Hub) onConnect(p *Peer) {
	h.spectators.Add(1)
	h.log.Info().Uint32("peer", uint32(p.ID)).Str("remote", p.Addr).Msg("spectator connected")
}

func (h *Hub) onDisconnect(p *Peer) {
	h.spectators.Add(-1)
	h.log.Info().Uint32("peer", uint32(p.ID)).Msg("spectator disconnected")
}

// Publish encodes snap once and queues it on every spectator
func (h *Hub) Publish(snap *Snapshot) error {
	frame, err := Encode(snap)
	if err != nil {
		return err
	}
	if n := h.peers.Broadcast(frame); n > 0 {
		h.dropped.Add(uint64(n))
		h.log.Debug().Int("count", n).Msg("dropped slow spectators")
	}
	h.published.Add(1)
	return nil
}

// Observe returns a frame hook that publishes game every BroadcastEvery ticks
// Snapshots are skipped while nobody is watching; screen reports the active screen name
func (h *Hub) Observe(game *engine.Game, screen func() string) engine.FrameHook {
	every := uint64(max(1, h.config.BroadcastEvery))
	return func(time.Duration) {
		if game.Ticks()%every != 0 || h.Count() == 0 {
			return
		}
		snap := SnapshotOf(game)
		if screen != nil {
			snap.Screen = screen()
		}
		if err := h.Publish(snap); err != nil {
			h.log.Error().Err(err).Msg("snapshot publish failed")
		}
	}
}

// Count returns the number of connected spectators
func (h *Hub) Count() int { return h.peers.PeerCount() }

// Published returns the number of snapshots sent
func (h *Hub) Published() uint64 { return h.published.Load() }

// Dropped returns the number of spectators dropped for falling behind
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// Close disconnects every spectator
func (h *Hub) Close() { h.peers.Close() }
