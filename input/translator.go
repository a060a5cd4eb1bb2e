package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek/vmath"
)

// Projector maps a terminal cell to a world point
type Projector interface {
	ScreenToWorld(x, y int) vmath.Vec2
}

// Translator turns raw terminal events into intents
type Translator struct {
	keys *KeyTable
	proj Projector
}

// NewTranslator creates a translator; keys nil selects the defaults
func NewTranslator(keys *KeyTable, proj Projector) *Translator {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Translator{keys: keys, proj: proj}
}

// Translate returns the intents produced by ev, in the order they apply
func (t *Translator) Translate(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := t.keys.Lookup(ev.Key(), ev.Rune())
		if !ok {
			return nil
		}
		if entry.Type == IntentHeading {
			return []Intent{HeadingIntent(entry.Heading)}
		}
		return []Intent{{Type: entry.Type}}

	case *tcell.EventMouse:
		if t.proj == nil {
			return nil
		}
		x, y := ev.Position()
		out := []Intent{TargetIntent(t.proj.ScreenToWorld(x, y))}
		if ev.Buttons()&tcell.Button1 != 0 {
			out = append(out, Intent{Type: IntentStart})
		}
		return out

	case *tcell.EventFocus:
		if !ev.Focused {
			return []Intent{{Type: IntentFocusLost}}
		}

	case *tcell.EventResize:
		return []Intent{{Type: IntentResize}}
	}
	return nil
}
