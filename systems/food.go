package systems

import (
	"log"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/vmath"
)

// FoodRegistry owns the live food set, its spawning and its magnetic motion
// Not safe for concurrent use; the simulation tick holds exclusive access
type FoodRegistry struct {
	cfg    *config.Config
	bounds components.WorldBounds
	table  components.FoodTable
	rng    Rand

	items  []components.FoodItem // iteration order is insertion order
	nextID uint64
}

// NewFoodRegistry creates an empty registry
func NewFoodRegistry(cfg *config.Config, bounds components.WorldBounds, rng Rand) *FoodRegistry {
	return &FoodRegistry{
		cfg:    cfg,
		bounds: bounds,
		table:  cfg.FoodTable(),
		rng:    rng,
		nextID: 1,
	}
}

// Items returns the live items, the slice must not be modified
func (r *FoodRegistry) Items() []components.FoodItem {
	return r.items
}

func (r *FoodRegistry) Len() int {
	return len(r.items)
}

// Add places a new item of type t at pos, assigning the next id
func (r *FoodRegistry) Add(pos vmath.Vec2, t components.FoodType) components.FoodItem {
	item := components.NewFoodItem(r.nextID, pos, t, &r.table)
	r.nextID++
	r.items = append(r.items, item)
	return item
}

// Remove deletes the item with id, preserving the order of the rest
func (r *FoodRegistry) Remove(id uint64) (components.FoodItem, bool) {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return item, true
		}
	}
	return components.FoodItem{}, false
}

// Nearest returns the item closest to p, first encountered on ties
func (r *FoodRegistry) Nearest(p vmath.Vec2) (components.FoodItem, bool) {
	best := -1
	bestDist := 0.0
	for i, item := range r.items {
		d := p.DistSq(item.Position)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return components.FoodItem{}, false
	}
	return r.items[best], true
}

// NearestWithin returns the closest item no farther than radius from p
func (r *FoodRegistry) NearestWithin(p vmath.Vec2, radius float64) (components.FoodItem, bool) {
	item, ok := r.Nearest(p)
	if !ok || p.DistSq(item.Position) > radius*radius {
		return components.FoodItem{}, false
	}
	return item, true
}

// RollType draws a food type, rolling BigHead, Magnetic and Special in that order
func (r *FoodRegistry) RollType() components.FoodType {
	switch {
	case r.rng.Float64() < r.cfg.Food.BigHeadChance:
		return components.FoodBigHead
	case r.rng.Float64() < r.cfg.Food.MagnetChance:
		return components.FoodMagnetic
	case r.rng.Float64() < r.cfg.Food.SpecialChance:
		return components.FoodSpecial
	default:
		return components.FoodNormal
	}
}

// RollBatchSize draws 1-3 items per batch
func (r *FoodRegistry) RollBatchSize() int {
	u := r.rng.Float64()
	switch {
	case u < r.cfg.Food.BatchTripleChance:
		return 3
	case u < r.cfg.Food.BatchDoubleChance:
		return 2
	default:
		return 1
	}
}

// SpawnBatch adds a batch of randomly typed items at free positions
// A position that exhausts the retry cap is skipped, not fatal
func (r *FoodRegistry) SpawnBatch(agents []*components.Agent) []components.FoodItem {
	n := r.RollBatchSize()
	spawned := make([]components.FoodItem, 0, n)
	for range n {
		pos, ok := SamplePosition(r.rng, r.bounds, r.cfg.Collision.Threshold, r.cfg.Food.RetryCap, func(p vmath.Vec2) bool {
			return r.blocked(p, agents)
		})
		if !ok {
			log.Printf("[food] spawn skipped after %d retries, %d items live", r.cfg.Food.RetryCap, len(r.items))
			continue
		}
		spawned = append(spawned, r.Add(pos, r.RollType()))
	}
	return spawned
}

// MaybeSpawn runs the opportunistic per-tick spawn, mandatory when empty
func (r *FoodRegistry) MaybeSpawn(agents []*components.Agent) []components.FoodItem {
	if len(r.items) == 0 {
		return r.SpawnBatch(agents)
	}
	if len(r.items) >= r.cfg.Food.MaxLive {
		return nil
	}
	if r.rng.Float64() < r.cfg.Food.SpawnTickChance {
		return r.SpawnBatch(agents)
	}
	return nil
}

// SpawnFromCorpse converts every corpse segment into a Normal item at its position
func (r *FoodRegistry) SpawnFromCorpse(corpse []vmath.Vec2) []components.FoodItem {
	spawned := make([]components.FoodItem, 0, len(corpse))
	for _, seg := range corpse {
		spawned = append(spawned, r.Add(seg, components.FoodNormal))
	}
	return spawned
}

func (r *FoodRegistry) blocked(p vmath.Vec2, agents []*components.Agent) bool {
	clearance := r.cfg.Collision.SpawnClearance
	if NearBody(p, agents, clearance) {
		return true
	}
	c2 := clearance * clearance
	for _, item := range r.items {
		if p.DistSq(item.Position) < c2 {
			return true
		}
	}
	return false
}

// ApplyMagnetism moves items toward heads
//   - Active magnet: fixed step toward the nearest magnetized head
//   - Ambient: any head within the ambient radius nudges the item
//
// Both pulls are summed; the result never overshoots the pulling head, never
// leaves the world and, under a magnet, always ends closer to the magnet head
func (r *FoodRegistry) ApplyMagnetism(agents []*components.Agent) {
	var magnets []vmath.Vec2
	for _, a := range agents {
		if a.Alive && a.Effects.MagnetTicks > 0 {
			magnets = append(magnets, a.Head())
		}
	}

	ambientR2 := r.cfg.Food.AmbientRadius * r.cfg.Food.AmbientRadius
	for i := range r.items {
		pos := r.items[i].Position
		var disp vmath.Vec2
		reach := -1.0 // distance to the closest pulling head

		var magnet vmath.Vec2
		hasMagnet := false
		if len(magnets) > 0 {
			magnet = nearestPoint(pos, magnets)
			hasMagnet = true
			disp = disp.Add(pos.Toward(magnet, r.cfg.Food.MagnetStep))
			reach = pos.Dist(magnet)
		}

		for _, a := range agents {
			if !a.Alive {
				continue
			}
			head := a.Head()
			if pos.DistSq(head) <= ambientR2 {
				disp = disp.Add(pos.Toward(head, r.cfg.Food.AmbientStep))
				if d := pos.Dist(head); reach < 0 || d < reach {
					reach = d
				}
			}
		}

		if disp.IsZero() {
			continue
		}
		disp = disp.ClampLen(reach)
		next := pos.Add(disp)

		if hasMagnet && next.DistSq(magnet) >= pos.DistSq(magnet) {
			next = pos.Add(pos.Toward(magnet, r.cfg.Food.MagnetStep))
		}
		if !next.IsFinite() || !r.bounds.Contains(next) {
			continue
		}
		r.items[i].Position = next
	}
}

func nearestPoint(p vmath.Vec2, points []vmath.Vec2) vmath.Vec2 {
	best := points[0]
	bestDist := p.DistSq(best)
	for _, q := range points[1:] {
		if d := p.DistSq(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}
