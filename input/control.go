package input

import "github.com/lixenwraith/snek/vmath"

// Control is the steering state of one player agent, folded from intents
//   - Pointer target is kept until replaced
//   - A heading override takes precedence over the target once asserted,
//     until the next override or focus loss
type Control struct {
	target    vmath.Vec2
	hasTarget bool

	override    vmath.Vec2
	hasOverride bool

	Boosting bool
}

// Apply folds intents in order
func (c *Control) Apply(intents []Intent) {
	for _, i := range intents {
		switch i.Type {
		case IntentTarget:
			if i.Point.IsFinite() {
				c.target = i.Point
				c.hasTarget = true
			}
		case IntentHeading:
			if !i.Point.IsZero() && i.Point.IsFinite() {
				c.override = i.Point
				c.hasOverride = true
			}
		case IntentBoost:
			c.Boosting = !c.Boosting
		case IntentFocusLost:
			c.hasOverride = false
			c.override = vmath.Vec2{}
		}
	}
}

// Direction returns the desired heading for an agent whose head is at head
// Zero means keep the current heading
func (c *Control) Direction(head vmath.Vec2) vmath.Vec2 {
	if c.hasOverride {
		return c.override
	}
	if c.hasTarget {
		return c.target.Sub(head)
	}
	return vmath.Vec2{}
}

// Override reports whether discrete input currently governs movement
func (c *Control) Override() bool {
	return c.hasOverride
}
