package systems

import (
	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/vmath"
)

// Cause identifies why a move is fatal
type Cause uint8

const (
	CauseNone Cause = iota
	// CauseBounds: left the world circle
	CauseBounds
	// CauseSelf: touched own body past the neck
	CauseSelf
	// CauseAgent: touched another alive agent's body
	CauseAgent
	// CauseHeadOn: next heads met
	CauseHeadOn
	// CauseBoxedIn: no safe steering candidate
	CauseBoxedIn
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "None"
	case CauseBounds:
		return "Bounds"
	case CauseSelf:
		return "Self"
	case CauseAgent:
		return "Agent"
	case CauseHeadOn:
		return "HeadOn"
	case CauseBoxedIn:
		return "BoxedIn"
	default:
		return "Unknown"
	}
}

// Collision is the outcome of a fatality check
type Collision struct {
	Cause   Cause
	OtherID int // valid for CauseAgent and CauseHeadOn
}

// Fatal reports whether the checked move kills the agent
func (c Collision) Fatal() bool {
	return c.Cause != CauseNone
}

// CollisionResolver tests continuous positions against distance thresholds
type CollisionResolver struct {
	bounds       components.WorldBounds
	threshold    float64
	neck         int
	pickupRadius float64
	bigHeadMul   float64
}

// NewCollisionResolver creates a resolver from the collision config group
func NewCollisionResolver(cfg *config.Config, bounds components.WorldBounds) *CollisionResolver {
	return &CollisionResolver{
		bounds:       bounds,
		threshold:    cfg.Collision.Threshold,
		neck:         cfg.Collision.NeckSegments,
		pickupRadius: cfg.Collision.PickupRadius,
		bigHeadMul:   cfg.Collision.BigHeadMultiplier,
	}
}

func (r *CollisionResolver) Threshold() float64 { return r.threshold }

// IsFatal checks candidate, the next head of agent, against the world edge,
// the agent's own body past the neck, and every other alive agent's body
func (r *CollisionResolver) IsFatal(candidate vmath.Vec2, agent *components.Agent, agents []*components.Agent) Collision {
	if !candidate.IsFinite() || !r.bounds.Contains(candidate) {
		return Collision{Cause: CauseBounds}
	}

	t2 := r.threshold * r.threshold
	if r.neck < len(agent.Segments) {
		for _, seg := range agent.Segments[r.neck:] {
			if candidate.DistSq(seg) < t2 {
				return Collision{Cause: CauseSelf}
			}
		}
	}

	for _, other := range agents {
		if other.ID == agent.ID || !other.Alive {
			continue
		}
		for _, seg := range other.Segments {
			if candidate.DistSq(seg) < t2 {
				return Collision{Cause: CauseAgent, OtherID: other.ID}
			}
		}
	}
	return Collision{}
}

// HeadOn reports whether two next heads meet, or one meets the other's current head
func (r *CollisionResolver) HeadOn(candA, headA, candB, headB vmath.Vec2) bool {
	t2 := r.threshold * r.threshold
	return candA.DistSq(candB) < t2 || candA.DistSq(headB) < t2 || candB.DistSq(headA) < t2
}

// PickupRadius returns the consumption distance of agent, widened under BigHead
func (r *CollisionResolver) PickupRadius(agent *components.Agent) float64 {
	if agent.Effects.BigHeadTicks > 0 {
		return r.pickupRadius * r.bigHeadMul
	}
	return r.pickupRadius
}

// FindPickup returns the nearest item within the agent's pickup radius of head
func (r *CollisionResolver) FindPickup(head vmath.Vec2, agent *components.Agent, food *FoodRegistry) (components.FoodItem, bool) {
	return food.NearestWithin(head, r.PickupRadius(agent))
}
