package constants

// Food Scoring And Growth
const (
	NormalScore  = 10
	SpecialScore = 30
	MagnetScore  = 20
	BigHeadScore = 20

	NormalGrowth  = 0
	SpecialGrowth = 2
	MagnetGrowth  = 0
	BigHeadGrowth = 0

	MagnetEffectTicks  = 60
	BigHeadEffectTicks = 60
)

// Food Spawn Probabilities
// Rolled independently in priority order: BigHead, Magnetic, Special, else Normal
const (
	BigHeadChance = 0.02
	MagnetChance  = 0.04
	SpecialChance = 0.075

	// SpawnTickChance is the per-tick chance of an opportunistic batch
	SpawnTickChance = 0.05

	// Batch size distribution: 3 below BatchTripleChance, 2 below BatchDoubleChance, else 1
	BatchTripleChance = 0.25
	BatchDoubleChance = 0.75

	// MaxLiveFood suppresses opportunistic spawns above this count
	MaxLiveFood = 60

	// TintCount is the number of cosmetic tints a special pickup may assign
	TintCount = 8
)

// Magnetism Constants
const (
	// MagnetStep is food displacement per tick toward an active magnet head
	MagnetStep = 0.5

	// AmbientRadius is the passive attraction range of any head
	AmbientRadius = 2.0

	// AmbientStep is food displacement per tick from passive attraction
	AmbientStep = 0.15
)
