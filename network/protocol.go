package network

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hexagon/engine"
)

// ProtocolVersion is bumped on incompatible Snapshot changes
const ProtocolVersion = 1

// SlotSnapshot is one slot's width and its obstacles as [distance, height] pairs
type SlotSnapshot struct {
	Width     float64      `msgpack:"w"`
	Obstacles [][2]float64 `msgpack:"o"`
}

// Snapshot is the read-only view sent to spectators
type Snapshot struct {
	Version    int            `msgpack:"v"`
	Tick       uint64         `msgpack:"tick"`
	Screen     string         `msgpack:"screen,omitempty"`
	Running    bool           `msgpack:"running"`
	Position   float64        `msgpack:"pos"`
	Rotation   float64        `msgpack:"rot"`
	Zoom       float64        `msgpack:"zoom"`
	PlayTimeMS int64          `msgpack:"play_ms"`
	Slots      []SlotSnapshot `msgpack:"slots"`
}

// SnapshotOf copies the spectator-visible state of game
// Call from the goroutine that owns game
func SnapshotOf(game *engine.Game) *Snapshot {
	s := game.State()
	snap := &Snapshot{
		Version:    ProtocolVersion,
		Tick:       game.Ticks(),
		Running:    s.Running,
		Position:   s.Position,
		Rotation:   s.Render.Rotation,
		Zoom:       s.Render.Zoom,
		PlayTimeMS: game.PlayTime().Milliseconds(),
		Slots:      make([]SlotSnapshot, len(s.Slots)),
	}
	for i, slot := range s.Slots {
		obs := make([][2]float64, len(slot.Obstacles))
		for j, o := range slot.Obstacles {
			obs[j] = [2]float64{o.Distance, o.Height}
		}
		snap.Slots[i] = SlotSnapshot{Width: slot.Width, Obstacles: obs}
	}
	return snap
}

// Encode serializes a snapshot into one binary frame
func Encode(snap *Snapshot) ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode parses a binary frame
func Decode(frame []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(frame, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != ProtocolVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrProtocolVersion, snap.Version, ProtocolVersion)
	}
	return &snap, nil
}
