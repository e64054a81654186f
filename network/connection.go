package network

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Sentinel errors
var (
	ErrMaxPeers        = errors.New("max spectators reached")
	ErrProtocolVersion = errors.New("unsupported protocol version")
	ErrTransportActive = errors.New("transport already running")
)

// PeerID uniquely identifies a connected spectator
type PeerID uint32

// Peer is one spectator connection
// Only writeLoop writes to conn; only readLoop reads
type Peer struct {
	ID   PeerID
	Addr string

	conn      *websocket.Conn
	sendCh    chan []byte
	writeWait time.Duration

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	return &Peer{
		ID:        id,
		Addr:      conn.RemoteAddr().String(),
		conn:      conn,
		sendCh:    make(chan []byte, max(1, cfg.SendQueueSize)),
		writeWait: cfg.WriteTimeout,
		closeCh:   make(chan struct{}),
	}
}

// Send queues a frame without blocking
// Returns false if the peer is closed or its queue is full
func (p *Peer) Send(frame []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}
	select {
	case p.sendCh <- frame:
		return true
	default:
		return false
	}
}

// Close tears the connection down; safe to call repeatedly
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// Done is closed once the peer is closed
func (p *Peer) Done() <-chan struct{} { return p.closeCh }

// readLoop discards inbound frames so control messages are processed and disconnects are noticed
func (p *Peer) readLoop(limit int64) {
	defer p.Close()
	p.conn.SetReadLimit(limit)
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (p *Peer) writeLoop() {
	defer p.Close()
	for {
		select {
		case <-p.closeCh:
			return
		case frame := <-p.sendCh:
			if p.writeWait > 0 {
				p.conn.SetWriteDeadline(time.Now().Add(p.writeWait))
			}
			if err := p.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		}
	}
}

// PeerManager tracks spectator connections
type PeerManager struct {
	mu       sync.RWMutex
	peers    map[PeerID]*Peer
	nextID   atomic.Uint32
	maxPeers int
	config   *Config

	onConnect    func(*Peer)
	onDisconnect func(*Peer)
}

// NewPeerManager creates a peer manager
func NewPeerManager(cfg *Config) *PeerManager {
	return &PeerManager{
		peers:    make(map[PeerID]*Peer),
		maxPeers: cfg.MaxPeers,
		config:   cfg,
	}
}

// SetHandlers configures lifecycle callbacks
func (pm *PeerManager) SetHandlers(onConnect, onDisconnect func(*Peer)) {
	pm.onConnect = onConnect
	pm.onDisconnect = onDisconnect
}

// Full reports whether another peer would exceed the limit
func (pm *PeerManager) Full() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.maxPeers > 0 && len(pm.peers) >= pm.maxPeers
}

// Add registers an upgraded connection and starts its I/O loops
func (pm *PeerManager) Add(conn *websocket.Conn) (*Peer, error) {
	pm.mu.Lock()
	if pm.maxPeers > 0 && len(pm.peers) >= pm.maxPeers {
		pm.mu.Unlock()
		conn.Close()
		return nil, ErrMaxPeers
	}
	peer := newPeer(PeerID(pm.nextID.Add(1)), conn, pm.config)
	pm.peers[peer.ID] = peer
	pm.mu.Unlock()

	go peer.readLoop(pm.config.ReadLimit)
	go peer.writeLoop()
	go pm.monitorPeer(peer)

	if pm.onConnect != nil {
		pm.onConnect(peer)
	}
	return peer, nil
}

func (pm *PeerManager) monitorPeer(peer *Peer) {
	<-peer.closeCh

	pm.mu.Lock()
	delete(pm.peers, peer.ID)
	pm.mu.Unlock()

	if pm.onDisconnect != nil {
		pm.onDisconnect(peer)
	}
}

// Broadcast queues frame on every peer and closes the ones that cannot keep up
// Returns the number of peers dropped
func (pm *PeerManager) Broadcast(frame []byte) int {
	pm.mu.RLock()
	var slow []*Peer
	for _, peer := range pm.peers {
		if !peer.Send(frame) {
			slow = append(slow, peer)
		}
	}
	pm.mu.RUnlock()

	for _, peer := range slow {
		peer.Close()
	}
	return len(slow)
}

// PeerCount returns current connected peer count
func (pm *PeerManager) PeerCount() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// Close disconnects all peers
func (pm *PeerManager) Close() {
	pm.mu.RLock()
	peers := make([]*Peer, 0, len(pm.peers))
	for _, peer := range pm.peers {
		peers = append(peers, peer)
	}
	pm.mu.RUnlock()

	for _, peer := range peers {
		peer.Close()
	}
}
