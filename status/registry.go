// Package status collects simulation metrics for the overlay and logs
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys
const (
	KeyTicks       = "engine.ticks"
	KeyTickMS      = "engine.tick_ms"
	KeyTickMaxMS   = "engine.tick_max_ms"
	KeyFoodLive    = "food.live"
	KeyFoodSpawned = "food.spawned"
	KeyDeaths      = "agent.deaths"
	KeyRespawns    = "agent.respawns"
	KeyEffects     = "agent.effects"
	KeyFeedClients = "feed.clients"

	// KeyEatenPrefix is joined with the food type name
	KeyEatenPrefix = "food.eaten."
)

// Registry is the central metrics facade
// Writers cache pointers at init and update atomics directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Summary renders every metric as one line, sorted by key
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		fmt.Fprintf(&b, "%s=%.2f ", key, v.Get())
	})
	return strings.TrimSpace(b.String())
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
