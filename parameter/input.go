package parameter

import "time"

// Input
const (
	// InputHoldWindow keeps a key held after its last press/repeat event
	// Terminals report no key-up, so a held key is inferred from autorepeat
	InputHoldWindow = 150 * time.Millisecond

	// EventQueueSize is the capacity of the one-shot input event buffer
	EventQueueSize = 64
)
