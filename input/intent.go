package input

// Intent is a semantic action decoupled from the device that produced it
type Intent uint8

const (
	IntentNone Intent = iota

	// Held intents, polled once per tick
	IntentLeft
	IntentRight

	// One-shot intents, queued by the event side
	IntentMenuLeft   // previous menu entry
	IntentMenuRight  // next menu entry
	IntentSelect     // Space/Enter/click: pick menu entry, restart a stopped run
	IntentEscape     // back to the title screen
	IntentQuit       // Ctrl+C, q
	IntentToggleMute // m
	IntentResize     // terminal or window resized

	intentCount
)

var intentNames = [intentCount]string{
	IntentNone:       "none",
	IntentLeft:       "left",
	IntentRight:      "right",
	IntentMenuLeft:   "menu_left",
	IntentMenuRight:  "menu_right",
	IntentSelect:     "select",
	IntentEscape:     "escape",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// ParseIntent resolves a name used in key binding configuration
func ParseIntent(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), true
		}
	}
	return IntentNone, false
}

// Event is one queued one-shot intent
type Event struct {
	Intent Intent
}
