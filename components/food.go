package components

import (
	"github.com/lixenwraith/snek/constants"
	"github.com/lixenwraith/snek/vmath"
)

// FoodType selects the effect descriptor of a food item
type FoodType uint8

const (
	FoodNormal    FoodType = iota // Score + growth
	FoodSpecial                   // Higher score, extra growth, cosmetic tint
	FoodMagnetic                  // Starts magnet timer
	FoodBigHead                   // Starts big-head timer (wider pickup)
	foodTypeCount
)

func (t FoodType) String() string {
	switch t {
	case FoodNormal:
		return "Normal"
	case FoodSpecial:
		return "Special"
	case FoodMagnetic:
		return "Magnetic"
	case FoodBigHead:
		return "BigHead"
	default:
		return "Unknown"
	}
}

// FoodSpec is the per-type effect descriptor
type FoodSpec struct {
	Score       int  `toml:"score"`
	Growth      int  `toml:"growth"`       // Duplicate tail segments appended on pickup
	EffectTicks uint `toml:"effect_ticks"` // 0 for Normal/Special
}

// FoodTable maps every food type to its descriptor
type FoodTable [foodTypeCount]FoodSpec

// DefaultFoodTable returns the reference descriptors
func DefaultFoodTable() FoodTable {
	return FoodTable{
		FoodNormal:   {Score: constants.NormalScore, Growth: constants.NormalGrowth},
		FoodSpecial:  {Score: constants.SpecialScore, Growth: constants.SpecialGrowth},
		FoodMagnetic: {Score: constants.MagnetScore, Growth: constants.MagnetGrowth, EffectTicks: constants.MagnetEffectTicks},
		FoodBigHead:  {Score: constants.BigHeadScore, Growth: constants.BigHeadGrowth, EffectTicks: constants.BigHeadEffectTicks},
	}
}

// Spec returns the descriptor for t, Normal for unknown types
func (ft *FoodTable) Spec(t FoodType) FoodSpec {
	if t >= foodTypeCount {
		return ft[FoodNormal]
	}
	return ft[t]
}

// FoodItem is one consumable in the world
// ID is unique among live items and never reused
type FoodItem struct {
	ID          uint64
	Position    vmath.Vec2
	Type        FoodType
	ScoreValue  int
	GrowthCount int
	EffectTicks uint
}

// NewFoodItem builds an item carrying the descriptor of its type
func NewFoodItem(id uint64, pos vmath.Vec2, t FoodType, table *FoodTable) FoodItem {
	spec := table.Spec(t)
	return FoodItem{
		ID:          id,
		Position:    pos,
		Type:        t,
		ScoreValue:  spec.Score,
		GrowthCount: spec.Growth,
		EffectTicks: spec.EffectTicks,
	}
}
