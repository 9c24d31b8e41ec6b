package schema

import "fmt"

// Behavior is the referential action taken when a referenced row changes.
type Behavior int

const (
	NoAction Behavior = iota
	Restrict
	SetNull
	SetDefault
	Cascade
)

// String renders the behavior as it appears in DDL.
func (b Behavior) String() string {
	switch b {
	case NoAction:
		return "NO ACTION"
	case Restrict:
		return "RESTRICT"
	case SetNull:
		return "SET NULL"
	case SetDefault:
		return "SET DEFAULT"
	case Cascade:
		return "CASCADE"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// ParseBehavior accepts the DDL spelling of a behavior, case-sensitive,
// with either a space or an underscore between words.
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "NO ACTION", "NO_ACTION":
		return NoAction, nil
	case "RESTRICT":
		return Restrict, nil
	case "SET NULL", "SET_NULL":
		return SetNull, nil
	case "SET DEFAULT", "SET_DEFAULT":
		return SetDefault, nil
	case "CASCADE":
		return Cascade, nil
	}
	return 0, fmt.Errorf("unknown referential action %q", s)
}

type actionEvent int

const (
	eventUpdate actionEvent = iota
	eventDelete
)

// ConstraintAction pairs a Behavior with the event that triggers it.
// Build values with OnUpdate and OnDelete.
type ConstraintAction struct {
	event    actionEvent
	behavior Behavior
}

// OnUpdate returns an ON UPDATE action.
func OnUpdate(b Behavior) ConstraintAction {
	return ConstraintAction{event: eventUpdate, behavior: b}
}

// OnDelete returns an ON DELETE action.
func OnDelete(b Behavior) ConstraintAction {
	return ConstraintAction{event: eventDelete, behavior: b}
}

// Behavior returns the action's behavior.
func (a ConstraintAction) Behavior() Behavior { return a.behavior }

// IsOnDelete reports whether the action fires on DELETE.
func (a ConstraintAction) IsOnDelete() bool { return a.event == eventDelete }

func (a ConstraintAction) String() string {
	if a.event == eventDelete {
		return "ON DELETE " + a.behavior.String()
	}
	return "ON UPDATE " + a.behavior.String()
}
