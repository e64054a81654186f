package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Transport serves a Hub over HTTP
type Transport struct {
	config   *Config
	hub      *Hub
	log      zerolog.Logger
	server   *http.Server
	listener net.Listener

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewTransport creates a transport for hub
func NewTransport(cfg *Config, hub *Hub, log zerolog.Logger) *Transport {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Transport{config: cfg, hub: hub, log: log}
}

// Start binds the listen address and serves in the background
func (t *Transport) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrTransportActive
	}

	ln, err := net.Listen("tcp", t.config.Addr)
	if err != nil {
		t.running.Store(false)
		return fmt.Errorf("spectator listen %s: %w", t.config.Addr, err)
	}
	t.listener = ln

	mux := http.NewServeMux()
	mux.Handle(t.config.Path, t.hub)
	t.server = &http.Server{Handler: mux}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.log.Error().Err(err).Msg("spectator server stopped")
		}
	}()
	t.log.Info().Str("addr", ln.Addr().String()).Str("path", t.config.Path).Msg("spectator server listening")
	return nil
}

// Addr returns the bound address, useful when listening on port 0
func (t *Transport) Addr() string {
	if t.listener == nil {
		return ""
	}
	return t.listener.Addr().String()
}

// Stop shuts the server down and disconnects every spectator
// Upgraded connections are hijacked, so the hub closes them explicitly
func (t *Transport) Stop(ctx context.Context) error {
	if !t.running.CompareAndSwap(true, false) {
		return nil
	}
	err := t.server.Shutdown(ctx)
	t.hub.Close()
	t.wg.Wait()
	return err
}
