package audio

import (
	"errors"
	"log"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/events"
)

// Player plays a sound cue
type Player interface {
	Play(SoundType) error
}

// EventHandler maps simulation events to sound cues
// Only pickups by the player are voiced; deaths of any autonomous agent are
type EventHandler struct {
	player Player
}

func NewEventHandler(p Player) *EventHandler {
	return &EventHandler{player: p}
}

func (h *EventHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodEaten,
		events.EventEffectStarted,
		events.EventAgentDied,
		events.EventSimulationEnded,
	}
}

func (h *EventHandler) HandleEvent(ev events.GameEvent) {
	sound, ok := cueFor(ev)
	if !ok {
		return
	}
	if err := h.player.Play(sound); err != nil && !errors.Is(err, ErrNotInitialized) {
		log.Printf("[audio] play %s: %v", sound, err)
	}
}

func cueFor(ev events.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventFoodEaten:
		if ev.Kind != components.KindPlayer {
			return 0, false
		}
		switch ev.Food {
		case components.FoodSpecial:
			return SoundSpecial, true
		case components.FoodNormal:
			return SoundEat, true
		}
		// Effect foods are voiced by EffectStarted
		return 0, false
	case events.EventEffectStarted:
		return SoundPowerUp, ev.Kind == components.KindPlayer
	case events.EventAgentDied:
		return SoundDeath, ev.Kind == components.KindAutonomous
	case events.EventSimulationEnded:
		return SoundGameOver, true
	}
	return 0, false
}
