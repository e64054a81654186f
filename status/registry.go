// Package status holds lock-free runtime counters shared by the simulation, HUD and spectator stream
package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	KeyTicks        = "engine.ticks"
	KeyFPS          = "engine.fps"
	KeyPlayTimeMS   = "engine.play_ms"
	KeyRestarts     = "engine.restarts"
	KeyCollisions   = "engine.collisions"
	KeyCulled       = "arena.culled"
	KeyObstacles    = "arena.obstacles"
	KeyPoolFree     = "arena.pool_free"
	KeyPoolAlloc    = "arena.pool_allocated"
	KeyScreen       = "app.screen"
	KeyLastPattern  = "pattern.last"
	KeySpectators   = "network.spectators"
	KeyAudioEnabled = "audio.enabled"

	// PatternPrefix prefixes per-generator placement counters
	PatternPrefix = "pattern.count."
)

// Registry is the central metrics facade
// Producers cache pointers during init; tick loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a flat map for display or export
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
