package bag

import "fmt"

// EventKind identifies a user input.
type EventKind int

const (
	EventChoose EventKind = iota
	EventClickCord
	EventGrantMercy
	EventDenyMercy
	EventReset
	EventAbandon
)

func (k EventKind) String() string {
	switch k {
	case EventChoose:
		return "Choose"
	case EventClickCord:
		return "Click Cord"
	case EventGrantMercy:
		return "Grant Mercy"
	case EventDenyMercy:
		return "Deny Mercy"
	case EventReset:
		return "Reset"
	case EventAbandon:
		return "Abandon"
	}
	return "Unknown"
}

// Event is a discrete user input. Value carries the cord count for
// EventChoose and the cord id for EventClickCord.
type Event struct {
	Kind  EventKind
	Value int
}

func Choose(count int) Event { return Event{Kind: EventChoose, Value: count} }
func ClickCord(id int) Event { return Event{Kind: EventClickCord, Value: id} }
func GrantMercy() Event { return Event{Kind: EventGrantMercy} }
func DenyMercy() Event { return Event{Kind: EventDenyMercy} }
func Reset() Event { return Event{Kind: EventReset} }
func Abandon() Event { return Event{Kind: EventAbandon} }

// Dispatch applies a single event to the controller.
func (c *Controller) Dispatch(e Event) error {
	switch e.Kind {
	case EventChoose:
		return c.Choose(e.Value)
	case EventClickCord:
		return c.ClickCord(e.Value)
	case EventGrantMercy:
		return c.ResolveMercy(true)
	case EventDenyMercy:
		return c.ResolveMercy(false)
	case EventReset:
		return c.Reset()
	case EventAbandon:
		return c.Abandon()
	}
	return fmt.Errorf("unknown event kind %d", e.Kind)
}
