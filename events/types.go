package events

import (
	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/vmath"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventFoodEaten signals a pickup
	// Trigger: commit phase | Fields: AgentID, FoodID, Food, Score (agent total), Position
	EventFoodEaten EventType = iota

	// EventFoodSpawned signals a spawn batch or corpse conversion
	// Trigger: spawner | Fields: Count, AgentID (-1 unless corpse)
	EventFoodSpawned

	// EventAgentDied signals a fatal collision or a boxed-in autonomous agent
	// Fields: AgentID, Kind, Score (after halving), Position (head at death), Count (corpse size)
	EventAgentDied

	// EventAgentRespawned signals an autonomous agent re-entering the world
	// Fields: AgentID, Position
	EventAgentRespawned

	// EventEffectStarted signals a timer set by a pickup
	// Fields: AgentID, Effect
	EventEffectStarted

	// EventEffectExpired signals a timer reaching zero
	// Fields: AgentID, Effect
	EventEffectExpired

	// EventSimulationStarted signals Idle -> Running
	EventSimulationStarted

	// EventSimulationEnded signals the player death, terminal
	// Fields: AgentID (player), Score (final)
	EventSimulationEnded
)

func (t EventType) String() string {
	switch t {
	case EventFoodEaten:
		return "FoodEaten"
	case EventFoodSpawned:
		return "FoodSpawned"
	case EventAgentDied:
		return "AgentDied"
	case EventAgentRespawned:
		return "AgentRespawned"
	case EventEffectStarted:
		return "EffectStarted"
	case EventEffectExpired:
		return "EffectExpired"
	case EventSimulationStarted:
		return "SimulationStarted"
	case EventSimulationEnded:
		return "SimulationEnded"
	default:
		return "Unknown"
	}
}

// GameEvent is an immutable record of something that happened during a tick
type GameEvent struct {
	Type     EventType
	Tick     uint64
	AgentID  int
	Kind     components.AgentKind
	FoodID   uint64
	Food     components.FoodType
	Effect   components.EffectKind
	Score    int
	Count    int
	Position vmath.Vec2
}
