package parameter

import "time"

// Spectator Stream
const (
	// BroadcastEvery publishes one snapshot every N simulation ticks (~20Hz at 60 FPS)
	BroadcastEvery = 3

	// SpectatorWriteWait bounds a single websocket write
	SpectatorWriteWait = 250 * time.Millisecond

	// SpectatorReadLimit caps inbound frames; spectators only send close/pong
	SpectatorReadLimit = 512

	DefaultSpectatorAddr = "127.0.0.1:8765"
)

// Spectator Limits
const (
	SpectatorMaxPeers = 16

	// SpectatorSendQueue is the per-spectator backlog; a full queue drops the spectator
	SpectatorSendQueue = 8

	SpectatorPath = "/spectate"
)
