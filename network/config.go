package network

import (
	"time"

	"github.com/lixenwraith/hexagon/parameter"
)

// Config holds spectator server configuration
type Config struct {
	// Addr is the listen address
	Addr string
	Path string

	// Connection limits
	MaxPeers      int
	SendQueueSize int
	ReadLimit     int64

	// Timing
	WriteTimeout time.Duration

	// BroadcastEvery publishes one snapshot per N simulation ticks
	BroadcastEvery int
}

// DefaultConfig returns loopback-only defaults
func DefaultConfig() *Config {
	return &Config{
		Addr:           parameter.DefaultSpectatorAddr,
		Path:           parameter.SpectatorPath,
		MaxPeers:       parameter.SpectatorMaxPeers,
		SendQueueSize:  parameter.SpectatorSendQueue,
		ReadLimit:      parameter.SpectatorReadLimit,
		WriteTimeout:   parameter.SpectatorWriteWait,
		BroadcastEvery: parameter.BroadcastEvery,
	}
}
