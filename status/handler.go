package status

import (
	"sync/atomic"

	"github.com/lixenwraith/snek/events"
)

// EventHandler folds simulation events into counters
type EventHandler struct {
	reg      *Registry
	deaths   *atomic.Int64
	respawns *atomic.Int64
	spawned  *atomic.Int64
	effects  *atomic.Int64
}

func NewEventHandler(reg *Registry) *EventHandler {
	return &EventHandler{
		reg:      reg,
		deaths:   reg.Ints.Get(KeyDeaths),
		respawns: reg.Ints.Get(KeyRespawns),
		spawned:  reg.Ints.Get(KeyFoodSpawned),
		effects:  reg.Ints.Get(KeyEffects),
	}
}

func (h *EventHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodEaten,
		events.EventFoodSpawned,
		events.EventAgentDied,
		events.EventAgentRespawned,
		events.EventEffectStarted,
	}
}

func (h *EventHandler) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodEaten:
		h.reg.Ints.Get(KeyEatenPrefix + ev.Food.String()).Add(1)
	case events.EventFoodSpawned:
		h.spawned.Add(int64(ev.Count))
	case events.EventAgentDied:
		h.deaths.Add(1)
	case events.EventAgentRespawned:
		h.respawns.Add(1)
	case events.EventEffectStarted:
		h.effects.Add(1)
	}
}
