package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Dispatcher turns terminal events into held intents and queued events
// It runs on the event goroutine
type Dispatcher struct {
	table *KeyTable
	state *State
	queue *Queue

	width       int
	mouseIntent Intent
}

// NewDispatcher creates a dispatcher writing into state and queue
func NewDispatcher(table *KeyTable, state *State, queue *Queue) *Dispatcher {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Dispatcher{table: table, state: state, queue: queue}
}

// SetWidth sets the screen width used to split mouse presses into left and right halves
func (d *Dispatcher) SetWidth(w int) {
	d.width = w
}

// Handle processes one terminal event
func (d *Dispatcher) Handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := d.table.Lookup(ev)
		if !ok {
			return
		}
		if entry.Held != IntentNone {
			d.state.Press(entry.Held, now)
		}
		if entry.Event != IntentNone {
			d.queue.PushIntent(entry.Event)
		}

	case *tcell.EventMouse:
		d.handleMouse(ev)

	case *tcell.EventResize:
		w, _ := ev.Size()
		d.width = w
		d.queue.PushIntent(IntentResize)
	}
}

// handleMouse emulates touch steering: pressing on a screen half holds that direction until release
func (d *Dispatcher) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	x, _ := ev.Position()

	switch {
	case pressed && d.mouseIntent == IntentNone:
		d.mouseIntent = IntentRight
		if x < d.width/2 {
			d.mouseIntent = IntentLeft
		}
		d.state.Hold(d.mouseIntent)
		d.queue.PushIntent(IntentSelect)
	case !pressed && d.mouseIntent != IntentNone:
		d.state.Release(d.mouseIntent)
		d.mouseIntent = IntentNone
	}
}
