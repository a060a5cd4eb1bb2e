package engine

// Phase is the simulation lifecycle state
type Phase uint8

const (
	PhaseIdle    Phase = iota // Built, waiting for the start signal
	PhaseRunning              // Ticking
	PhaseEnded                // Player died, terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

var validTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseRunning},
	PhaseRunning: {PhaseEnded},
}

// CanTransition reports whether from -> to is a legal move
func CanTransition(from, to Phase) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
