package systems

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/vmath"
)

const tol = 1e-9

// seqRand replays a fixed sequence of draws, repeating the last one
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

func testWorld(t *testing.T) (*config.Config, components.WorldBounds) {
	t.Helper()
	cfg := config.Default()
	bounds, err := cfg.Bounds()
	if err != nil {
		t.Fatalf("Bounds: %v", err)
	}
	return cfg, bounds
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestRollType(t *testing.T) {
	cfg, bounds := testWorld(t)

	tests := []struct {
		name  string
		draws []float64
		want  components.FoodType
	}{
		{"bighead first", []float64{0.01}, components.FoodBigHead},
		{"magnetic second", []float64{0.5, 0.01}, components.FoodMagnetic},
		{"special third", []float64{0.5, 0.5, 0.05}, components.FoodSpecial},
		{"normal otherwise", []float64{0.5, 0.5, 0.5}, components.FoodNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewFoodRegistry(cfg, bounds, &seqRand{vals: tt.draws})
			if got := reg.RollType(); got != tt.want {
				t.Errorf("RollType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRollBatchSize(t *testing.T) {
	cfg, bounds := testWorld(t)

	for _, tt := range []struct {
		draw float64
		want int
	}{
		{0.1, 3}, {0.3, 2}, {0.74, 2}, {0.9, 1},
	} {
		reg := NewFoodRegistry(cfg, bounds, &seqRand{vals: []float64{tt.draw}})
		if got := reg.RollBatchSize(); got != tt.want {
			t.Errorf("RollBatchSize() with draw %v = %d, want %d", tt.draw, got, tt.want)
		}
	}
}

func TestSpawnBatchKeepsClearance(t *testing.T) {
	cfg, bounds := testWorld(t)
	reg := NewFoodRegistry(cfg, bounds, seeded(1))

	body := components.NewAgent(1, components.KindAutonomous, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	body.Segments = []vmath.Vec2{vmath.V(20, 20), vmath.V(19, 20), vmath.V(18, 20)}
	agents := []*components.Agent{body}

	for range 50 {
		reg.SpawnBatch(agents)
	}
	if reg.Len() == 0 {
		t.Fatal("no food spawned")
	}

	clear2 := cfg.Collision.SpawnClearance * cfg.Collision.SpawnClearance
	seen := make(map[uint64]bool)
	items := reg.Items()
	for i, item := range items {
		if seen[item.ID] {
			t.Errorf("duplicate id %d", item.ID)
		}
		seen[item.ID] = true

		if !bounds.Contains(item.Position) {
			t.Errorf("item %d outside world at %v", item.ID, item.Position)
		}
		for _, seg := range body.Segments {
			if item.Position.DistSq(seg) < clear2 {
				t.Errorf("item %d at %v too close to body segment %v", item.ID, item.Position, seg)
			}
		}
		for _, other := range items[i+1:] {
			if item.Position.DistSq(other.Position) < clear2 {
				t.Errorf("items %d and %d closer than clearance", item.ID, other.ID)
			}
		}
	}
}

func TestSpawnBatchSkipsWhenSaturated(t *testing.T) {
	cfg := config.Default()
	bounds, err := components.NewWorldBounds(vmath.V(0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	reg := NewFoodRegistry(cfg, bounds, seeded(2))

	// One body segment at the center blocks the whole tiny world
	blocker := components.NewAgent(1, components.KindAutonomous, vmath.V(0, 0), vmath.V(1, 0), 1, 1)
	spawned := reg.SpawnBatch([]*components.Agent{blocker})

	if len(spawned) != 0 || reg.Len() != 0 {
		t.Errorf("spawned %d items in a saturated world, want 0", len(spawned))
	}
}

func TestMaybeSpawnWhenEmpty(t *testing.T) {
	cfg, bounds := testWorld(t)
	reg := NewFoodRegistry(cfg, bounds, seeded(3))
	cfg.Food.SpawnTickChance = 0

	if got := reg.MaybeSpawn(nil); len(got) == 0 {
		t.Fatal("empty registry must spawn")
	}
	before := reg.Len()
	if got := reg.MaybeSpawn(nil); len(got) != 0 || reg.Len() != before {
		t.Errorf("non-empty registry spawned with zero tick chance")
	}
}

func TestRemoveNeverReusesIDs(t *testing.T) {
	cfg, bounds := testWorld(t)
	reg := NewFoodRegistry(cfg, bounds, seeded(4))

	a := reg.Add(vmath.V(10, 10), components.FoodNormal)
	b := reg.Add(vmath.V(12, 10), components.FoodSpecial)

	if _, ok := reg.Remove(a.ID); !ok {
		t.Fatalf("Remove(%d) failed", a.ID)
	}
	if _, ok := reg.Remove(a.ID); ok {
		t.Errorf("second Remove(%d) succeeded", a.ID)
	}

	c := reg.Add(vmath.V(14, 10), components.FoodNormal)
	if c.ID <= b.ID {
		t.Errorf("new id %d not greater than previous %d", c.ID, b.ID)
	}
	if b.ScoreValue != cfg.Food.Special.Score {
		t.Errorf("special ScoreValue = %d, want %d", b.ScoreValue, cfg.Food.Special.Score)
	}
}

func TestSpawnFromCorpse(t *testing.T) {
	cfg, bounds := testWorld(t)
	reg := NewFoodRegistry(cfg, bounds, seeded(5))

	corpse := []vmath.Vec2{vmath.V(5, 20), vmath.V(6, 20), vmath.V(7, 20)}
	spawned := reg.SpawnFromCorpse(corpse)

	if len(spawned) != len(corpse) {
		t.Fatalf("spawned %d items, want %d", len(spawned), len(corpse))
	}
	for i, item := range spawned {
		if item.Type != components.FoodNormal {
			t.Errorf("item %d type = %v, want Normal", i, item.Type)
		}
		if !item.Position.Equal(corpse[i]) {
			t.Errorf("item %d at %v, want %v", i, item.Position, corpse[i])
		}
	}
}

func TestNearestTieBreak(t *testing.T) {
	cfg, bounds := testWorld(t)
	reg := NewFoodRegistry(cfg, bounds, seeded(6))

	first := reg.Add(vmath.V(22, 20), components.FoodNormal)
	reg.Add(vmath.V(18, 20), components.FoodNormal)

	got, ok := reg.Nearest(vmath.V(20, 20))
	if !ok || got.ID != first.ID {
		t.Errorf("Nearest() = %d, want first encountered %d", got.ID, first.ID)
	}
}

func TestMagnetMovesFoodCloser(t *testing.T) {
	cfg, bounds := testWorld(t)
	reg := NewFoodRegistry(cfg, bounds, seeded(7))

	magnet := components.NewAgent(1, components.KindPlayer, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	magnet.Effects.MagnetTicks = 10
	other := components.NewAgent(2, components.KindAutonomous, vmath.V(30, 20), vmath.V(0, 1), 1, 1)
	agents := []*components.Agent{magnet, other}

	reg.Add(vmath.V(5, 20), components.FoodNormal)
	reg.Add(vmath.V(20, 35), components.FoodSpecial)
	reg.Add(vmath.V(31, 21), components.FoodNormal) // inside the other agent's ambient radius
	reg.Add(vmath.V(20.3, 20), components.FoodNormal)

	for tick := 0; tick < 5; tick++ {
		before := make([]float64, reg.Len())
		for i, item := range reg.Items() {
			before[i] = item.Position.Dist(magnet.Head())
		}

		reg.ApplyMagnetism(agents)

		for i, item := range reg.Items() {
			after := item.Position.Dist(magnet.Head())
			if before[i] > tol && !(after < before[i]) {
				t.Errorf("tick %d item %d: distance %v -> %v, want strictly closer", tick, item.ID, before[i], after)
			}
		}
	}

	// No overshoot: the nearby item lands on the head, not past it
	last := reg.Items()[3]
	if last.Position.Dist(magnet.Head()) > tol {
		t.Errorf("close item at %v, want on head %v", last.Position, magnet.Head())
	}
}

func TestAmbientNudge(t *testing.T) {
	cfg, bounds := testWorld(t)
	reg := NewFoodRegistry(cfg, bounds, seeded(8))

	a := components.NewAgent(1, components.KindAutonomous, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	near := reg.Add(vmath.V(21.5, 20), components.FoodNormal)
	far := reg.Add(vmath.V(30, 20), components.FoodNormal)

	reg.ApplyMagnetism([]*components.Agent{a})

	items := reg.Items()
	wantNear := near.Position.Sub(vmath.V(cfg.Food.AmbientStep, 0))
	if !vecNear(items[0].Position, wantNear) {
		t.Errorf("near item at %v, want %v", items[0].Position, wantNear)
	}
	if !items[1].Position.Equal(far.Position) {
		t.Errorf("far item moved to %v, want unchanged", items[1].Position)
	}
}

func TestIsFatal(t *testing.T) {
	cfg, bounds := testWorld(t)
	res := NewCollisionResolver(cfg, bounds)

	self := components.NewAgent(1, components.KindAutonomous, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	self.Segments = []vmath.Vec2{vmath.V(20, 20), vmath.V(19, 20), vmath.V(19, 21), vmath.V(20, 21), vmath.V(21, 21)}

	other := components.NewAgent(2, components.KindAutonomous, vmath.V(25, 25), vmath.V(1, 0), 1, 1)
	other.Segments = []vmath.Vec2{vmath.V(25, 25), vmath.V(24, 25)}

	dead := components.NewAgent(3, components.KindAutonomous, vmath.V(10, 10), vmath.V(1, 0), 1, 1)
	dead.Kill()

	agents := []*components.Agent{self, other, dead}

	tests := []struct {
		name      string
		candidate vmath.Vec2
		want      Cause
	}{
		{"free move", vmath.V(21, 19), CauseNone},
		{"outside world", vmath.V(41, 20), CauseBounds},
		{"nan", vmath.V(math.NaN(), 20), CauseBounds},
		{"own body", vmath.V(21, 20.6), CauseSelf},
		{"neck excluded", vmath.V(20.5, 20), CauseNone},
		{"other body", vmath.V(24.2, 25), CauseAgent},
		{"dead agent ignored", vmath.V(10.1, 10), CauseNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := res.IsFatal(tt.candidate, self, agents)
			if got.Cause != tt.want {
				t.Errorf("IsFatal(%v) = %v, want %v", tt.candidate, got.Cause, tt.want)
			}
			if tt.want == CauseAgent && got.OtherID != other.ID {
				t.Errorf("OtherID = %d, want %d", got.OtherID, other.ID)
			}
		})
	}
}

func TestHeadOn(t *testing.T) {
	cfg, bounds := testWorld(t)
	res := NewCollisionResolver(cfg, bounds)

	tests := []struct {
		name                       string
		candA, headA, candB, headB vmath.Vec2
		want                       bool
	}{
		{"coincident candidates", vmath.V(20, 20), vmath.V(19, 20), vmath.V(20.1, 20), vmath.V(21, 20), true},
		{"candidate onto current head", vmath.V(20, 20), vmath.V(19, 20), vmath.V(20, 22), vmath.V(20.5, 20), true},
		{"apart", vmath.V(20, 20), vmath.V(19, 20), vmath.V(25, 20), vmath.V(26, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := res.HeadOn(tt.candA, tt.headA, tt.candB, tt.headB); got != tt.want {
				t.Errorf("HeadOn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindPickupBigHead(t *testing.T) {
	cfg, bounds := testWorld(t)
	res := NewCollisionResolver(cfg, bounds)
	reg := NewFoodRegistry(cfg, bounds, seeded(9))

	a := components.NewAgent(1, components.KindPlayer, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	item := reg.Add(vmath.V(22, 20), components.FoodNormal)

	if _, ok := res.FindPickup(a.Head(), a, reg); ok {
		t.Error("pickup at distance 2 without big head")
	}

	a.Effects.BigHeadTicks = 5
	got, ok := res.FindPickup(a.Head(), a, reg)
	if !ok || got.ID != item.ID {
		t.Errorf("FindPickup under big head = %v,%v, want item %d", got.ID, ok, item.ID)
	}
	if r := res.PickupRadius(a); r != cfg.Collision.PickupRadius*cfg.Collision.BigHeadMultiplier {
		t.Errorf("PickupRadius() = %v", r)
	}
}

func TestSteerPlayer(t *testing.T) {
	a := components.NewAgent(0, components.KindPlayer, vmath.V(20, 20), vmath.V(1, 0), 3, 1)

	if SteerPlayer(a, vmath.Vec2{}) {
		t.Error("zero direction accepted")
	}
	if SteerPlayer(a, vmath.V(-1, 0)) {
		t.Error("reversal accepted")
	}
	if !SteerPlayer(a, vmath.V(0, -3)) || !a.Heading.Equal(vmath.V(0, -1)) {
		t.Errorf("Heading = %v, want (0,-1)", a.Heading)
	}
}

func newPilot(t *testing.T) (*Autopilot, *FoodRegistry) {
	t.Helper()
	cfg, bounds := testWorld(t)
	res := NewCollisionResolver(cfg, bounds)
	reg := NewFoodRegistry(cfg, bounds, seeded(10))
	return NewAutopilot(res, reg, cfg.Agent.BoostMultiplier, 1), reg
}

func TestAutopilotSeeksFood(t *testing.T) {
	pilot, reg := newPilot(t)
	reg.Add(vmath.V(20, 30), components.FoodNormal)

	a := components.NewAgent(1, components.KindAutonomous, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	if !pilot.Steer(a, []*components.Agent{a}, 0) {
		t.Fatal("Steer() reported boxed in on an open field")
	}
	if !vecNear(a.Heading, vmath.V(0, 1)) {
		t.Errorf("Heading = %v, want (0,1)", a.Heading)
	}
}

func TestAutopilotAvoidsObstacle(t *testing.T) {
	pilot, reg := newPilot(t)
	reg.Add(vmath.V(30, 20), components.FoodNormal)

	a := components.NewAgent(1, components.KindAutonomous, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	blocker := components.NewAgent(2, components.KindAutonomous, vmath.V(21.6, 20), vmath.V(0, 1), 1, 1)

	if !pilot.Steer(a, []*components.Agent{a, blocker}, 0) {
		t.Fatal("Steer() reported boxed in")
	}
	// 0 and ±15 are within threshold of the blocker; +30 is the first safe offset
	want := vmath.FromAngle(vmath.DegToRad(30))
	if !vecNear(a.Heading, want) {
		t.Errorf("Heading = %v, want %v", a.Heading, want)
	}
}

func TestAutopilotBoxedIn(t *testing.T) {
	pilot, reg := newPilot(t)
	reg.Add(vmath.V(30, 20), components.FoodNormal)

	a := components.NewAgent(1, components.KindAutonomous, vmath.V(20, 20), vmath.V(1, 0), 1, 1)
	wall := components.NewAgent(2, components.KindAutonomous, vmath.V(21, 20), vmath.V(0, 1), 1, 1)
	wall.Segments = nil
	for _, deg := range []float64{0, 15, -15, 30, -30, 45, -45} {
		wall.Segments = append(wall.Segments, a.Head().Add(vmath.FromAngle(vmath.DegToRad(deg))))
	}

	heading := a.Heading
	if pilot.Steer(a, []*components.Agent{a, wall}, 0) {
		t.Error("Steer() found a candidate through a closed wall")
	}
	if !a.Heading.Equal(heading) {
		t.Errorf("boxed-in agent heading changed to %v", a.Heading)
	}
}

func TestAutopilotWanders(t *testing.T) {
	pilot, _ := newPilot(t)
	a := components.NewAgent(1, components.KindAutonomous, vmath.V(20, 20), vmath.V(1, 0), 1, 1)

	for tick := uint64(0); tick < 10; tick++ {
		if !pilot.Steer(a, []*components.Agent{a}, tick) {
			t.Fatalf("tick %d: boxed in without obstacles", tick)
		}
		if math.Abs(a.Heading.Len()-1) > tol {
			t.Fatalf("tick %d: heading %v is not unit", tick, a.Heading)
		}
		a.CommitMove(a.AdvanceHead(1), false, false)
	}
}

func vecNear(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}
