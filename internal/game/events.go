package game

import (
	"fmt"
	"strings"
)

// EventKind names something that happened during a tick.
type EventKind uint8

const (
	EventCaught        EventKind = iota // DI latched onto the recruit
	EventEscaped                        // player broke the latch
	EventEscapeFailed                   // escape roll lost, stamina docked
	EventAutoEscaped                    // latch timed out
	EventGearCollected                  // objective secured, pursuit over
	EventLost                           // catch limit reached
	EventQuit                           // player quit
	EventFootstep                       // recruit animation advanced
	EventWeather                        // dust storm started
)

func (k EventKind) String() string {
	switch k {
	case EventCaught:
		return "caught"
	case EventEscaped:
		return "escaped"
	case EventEscapeFailed:
		return "escape_failed"
	case EventAutoEscaped:
		return "auto_escaped"
	case EventGearCollected:
		return "gear_collected"
	case EventLost:
		return "lost"
	case EventQuit:
		return "quit"
	case EventFootstep:
		return "footstep"
	case EventWeather:
		return "weather"
	default:
		return "unknown"
	}
}

// Category groups kinds for log filtering.
func (k EventKind) Category() string {
	switch k {
	case EventCaught, EventEscaped, EventEscapeFailed, EventAutoEscaped:
		return "latch"
	case EventGearCollected, EventLost, EventQuit:
		return "run"
	case EventFootstep:
		return "anim"
	case EventWeather:
		return "weather"
	default:
		return "--"
	}
}

// Message is the on-screen feedback line for the kind, empty for kinds that
// have none.
func (k EventKind) Message() string {
	switch k {
	case EventCaught:
		return "DI caught you!"
	case EventEscaped:
		return "Escaped the DI!"
	case EventEscapeFailed:
		return "Failed to Escape!"
	case EventAutoEscaped:
		return "Automatically Escaped the DI!"
	case EventGearCollected:
		return "Gear collected! DI backs off... for now."
	case EventLost:
		return "DI won! You strip your blouse and head to the sand pit. Game Over!"
	case EventWeather:
		return "Dust storm rolling in."
	default:
		return ""
	}
}

// Event is one occurrence, stamped with the tick it happened on.
type Event struct {
	Tick       int
	Kind       EventKind
	Pos        Vec2 // recruit position at the time
	CatchCount int
	Stamina    float64
}

// String formats the event as a fixed-width log line.
//
//	[T=0121] latch   caught          catches=1 stamina=100.0
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-7s %-15s catches=%d stamina=%.1f",
		e.Tick, e.Kind.Category(), e.Kind, e.CatchCount, e.Stamina)
}

// EventLog is an unbounded, machine-readable record of a run's events.
type EventLog struct {
	entries []Event
	verbose bool
}

// NewEventLog creates an EventLog. Footsteps are only kept when verbose.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records an event.
func (el *EventLog) Add(e Event) {
	if e.Kind == EventFootstep && !el.verbose {
		return
	}
	el.entries = append(el.entries, e)
}

// Entries returns all recorded events.
func (el *EventLog) Entries() []Event {
	return el.entries
}

// Filter returns the events of one kind.
func (el *EventLog) Filter(kind EventKind) []Event {
	var out []Event
	for _, e := range el.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns events within [fromTick, toTick] inclusive.
func (el *EventLog) FilterTickRange(fromTick, toTick int) []Event {
	var out []Event
	for _, e := range el.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of a kind were recorded.
func (el *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range el.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// FirstOf returns the earliest event of a kind, or false if none.
func (el *EventLog) FirstOf(kind EventKind) (Event, bool) {
	for _, e := range el.entries {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

// LastOf returns the most recent event of a kind, or false if none.
func (el *EventLog) LastOf(kind EventKind) (Event, bool) {
	for i := len(el.entries) - 1; i >= 0; i-- {
		if el.entries[i].Kind == kind {
			return el.entries[i], true
		}
	}
	return Event{}, false
}

// Format returns the full log, one event per line.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
