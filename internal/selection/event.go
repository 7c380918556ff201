package selection

import "fmt"

// EventKind enumerates the interactions understood by [Apply].
type EventKind int

const (
	Plain  EventKind = iota // unmodified click
	Toggle                  // ctrl/cmd click
	Range                   // shift click
)

func (k EventKind) String() string {
	switch k {
	case Plain:
		return "click"
	case Toggle:
		return "toggle"
	case Range:
		return "range"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single selection interaction targeting one item.
type Event[K comparable] struct {
	Kind EventKind
	ID   K
}

// PlainClick is the constructor for a [Plain] event
func PlainClick[K comparable](id K) Event[K] { return Event[K]{Kind: Plain, ID: id} }

// ToggleClick is the constructor for a [Toggle] event
func ToggleClick[K comparable](id K) Event[K] { return Event[K]{Kind: Toggle, ID: id} }

// RangeClick is the constructor for a [Range] event
func RangeClick[K comparable](id K) Event[K] { return Event[K]{Kind: Range, ID: id} }

// EventFor maps raw modifier flags from a click to an [Event].
//
// ctrl (or cmd) takes precedence over shift.
func EventFor[K comparable](id K, ctrl, shift bool) Event[K] {
	switch {
	case ctrl:
		return ToggleClick(id)
	case shift:
		return RangeClick(id)
	default:
		return PlainClick(id)
	}
}
