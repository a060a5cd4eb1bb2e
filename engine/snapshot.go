package engine

import (
	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/vmath"
)

// AgentView is the immutable per-tick view of one agent
type AgentView struct {
	ID         int                  `msgpack:"id"`
	Kind       components.AgentKind `msgpack:"kind"`
	Segments   []vmath.Vec2         `msgpack:"segs"`
	Alive      bool                 `msgpack:"alive"`
	Score      int                  `msgpack:"score"`
	Tint       int                  `msgpack:"tint"`
	Generation uint32               `msgpack:"gen"`
	Magnet     bool                 `msgpack:"magnet"`
	BigHead    bool                 `msgpack:"bighead"`
	Boosting   bool                 `msgpack:"boost"`
}

// FoodView is the immutable per-tick view of one food item
type FoodView struct {
	ID       uint64              `msgpack:"id"`
	Position vmath.Vec2          `msgpack:"pos"`
	Type     components.FoodType `msgpack:"type"`
}

// Snapshot is a deep copy of the world after a tick
// Readers may hold it indefinitely; nothing mutates it after creation
type Snapshot struct {
	Tick   uint64      `msgpack:"tick"`
	Phase  Phase       `msgpack:"phase"`
	Agents []AgentView `msgpack:"agents"`
	Foods  []FoodView  `msgpack:"foods"`
}

// Agent returns the view with id
func (s Snapshot) Agent(id int) (AgentView, bool) {
	for _, a := range s.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return AgentView{}, false
}

func takeSnapshot(tick uint64, phase Phase, agents []*components.Agent, foods []components.FoodItem) Snapshot {
	snap := Snapshot{
		Tick:   tick,
		Phase:  phase,
		Agents: make([]AgentView, len(agents)),
		Foods:  make([]FoodView, len(foods)),
	}
	for i, a := range agents {
		snap.Agents[i] = AgentView{
			ID:         a.ID,
			Kind:       a.Kind,
			Segments:   append([]vmath.Vec2(nil), a.Segments...),
			Alive:      a.Alive,
			Score:      a.Score,
			Tint:       a.Tint,
			Generation: a.Generation,
			Magnet:     a.Effects.MagnetTicks > 0,
			BigHead:    a.Effects.BigHeadTicks > 0,
			Boosting:   a.Effects.Boosting,
		}
	}
	for i, f := range foods {
		snap.Foods[i] = FoodView{ID: f.ID, Position: f.Position, Type: f.Type}
	}
	return snap
}
