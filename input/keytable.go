package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyEntry is what a key produces: a held intent, a one-shot event, or both
type KeyEntry struct {
	Held  Intent
	Event Intent
}

// KeyTable maps terminal keys to intents
type KeyTable struct {
	Keys  map[tcell.Key]KeyEntry
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
// Arrows steer in a run and move the menu selection
func DefaultKeyTable() *KeyTable {
	left := KeyEntry{Held: IntentLeft, Event: IntentMenuLeft}
	right := KeyEntry{Held: IntentRight, Event: IntentMenuRight}
	return &KeyTable{
		Keys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   left,
			tcell.KeyRight:  right,
			tcell.KeyEnter:  {Event: IntentSelect},
			tcell.KeyEscape: {Event: IntentEscape},
			tcell.KeyCtrlC:  {Event: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'a': left,
			'h': left,
			'd': right,
			'l': right,
			' ': {Event: IntentSelect},
			'q': {Event: IntentQuit},
			'm': {Event: IntentToggleMute},
		},
	}
}

// Lookup returns the entry bound to ev
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.Keys[ev.Key()]
	return e, ok
}

// Bind applies overrides of the form key name -> intent name
// Single characters bind runes; "space" binds ' '; other names resolve through tcell.KeyNames
func (kt *KeyTable) Bind(bindings map[string]string) error {
	for key, name := range bindings {
		intent, ok := ParseIntent(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownIntent, name)
		}
		entry := KeyEntry{Event: intent}
		if intent == IntentLeft || intent == IntentRight {
			entry = KeyEntry{Held: intent}
		}

		switch {
		case strings.EqualFold(key, "space"):
			kt.Runes[' '] = entry
		case len([]rune(key)) == 1:
			kt.Runes[[]rune(key)[0]] = entry
		default:
			k, ok := keyByName(key)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownKey, key)
			}
			kt.Keys[k] = entry
		}
	}
	return nil
}

func keyByName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
