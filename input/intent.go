package input

import "github.com/lixenwraith/snek/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Steering intents, consumed once per tick by the simulation
	IntentTarget    // Pointer moved: steer toward a world point
	IntentHeading   // Direction key: discrete heading override
	IntentBoost     // Space: toggle boost
	IntentFocusLost // Terminal lost focus: clear the override

	// Host commands, handled outside the simulation
	IntentStart      // Left click, Enter
	IntentQuit       // q, Esc, Ctrl+C
	IntentRestart    // r after the run ended
	IntentPause      // p
	IntentToggleMute // m
	IntentResize     // Terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentTarget:
		return "Target"
	case IntentHeading:
		return "Heading"
	case IntentBoost:
		return "Boost"
	case IntentFocusLost:
		return "FocusLost"
	case IntentStart:
		return "Start"
	case IntentQuit:
		return "Quit"
	case IntentRestart:
		return "Restart"
	case IntentPause:
		return "Pause"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentResize:
		return "Resize"
	default:
		return "None"
	}
}

// Intent is an immutable input value; Point is a world target for
// IntentTarget and a direction for IntentHeading
type Intent struct {
	Type  IntentType
	Point vmath.Vec2
}

// Steering reports whether the intent belongs to the per-tick mailbox
func (i Intent) Steering() bool {
	switch i.Type {
	case IntentTarget, IntentHeading, IntentBoost, IntentFocusLost:
		return true
	}
	return false
}

// TargetIntent builds a pointer-style intent
func TargetIntent(p vmath.Vec2) Intent {
	return Intent{Type: IntentTarget, Point: p}
}

// HeadingIntent builds a key-style override intent
func HeadingIntent(dir vmath.Vec2) Intent {
	return Intent{Type: IntentHeading, Point: dir}
}
