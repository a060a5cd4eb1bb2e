package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek/vmath"
)

// KeyEntry describes what a key produces
type KeyEntry struct {
	Type    IntentType
	Heading vmath.Vec2 // for IntentHeading, screen-down is +Y like the world
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

var (
	dirUp    = vmath.V(0, -1)
	dirDown  = vmath.V(0, 1)
	dirLeft  = vmath.V(-1, 0)
	dirRight = vmath.V(1, 0)
)

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {IntentHeading, dirUp},
			tcell.KeyDown:   {IntentHeading, dirDown},
			tcell.KeyLeft:   {IntentHeading, dirLeft},
			tcell.KeyRight:  {IntentHeading, dirRight},
			tcell.KeyEnter:  {IntentStart, vmath.Vec2{}},
			tcell.KeyEscape: {IntentQuit, vmath.Vec2{}},
			tcell.KeyCtrlC:  {IntentQuit, vmath.Vec2{}},
		},
		Runes: map[rune]KeyEntry{
			// vi and wasd direction keys
			'k': {IntentHeading, dirUp},
			'j': {IntentHeading, dirDown},
			'h': {IntentHeading, dirLeft},
			'l': {IntentHeading, dirRight},
			'w': {IntentHeading, dirUp},
			's': {IntentHeading, dirDown},
			'a': {IntentHeading, dirLeft},
			'd': {IntentHeading, dirRight},

			' ': {IntentBoost, vmath.Vec2{}},
			'q': {IntentQuit, vmath.Vec2{}},
			'r': {IntentRestart, vmath.Vec2{}},
			'p': {IntentPause, vmath.Vec2{}},
			'm': {IntentToggleMute, vmath.Vec2{}},
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		e, ok := kt.Runes[r]
		return e, ok
	}
	e, ok := kt.SpecialKeys[key]
	return e, ok
}
