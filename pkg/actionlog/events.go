package actionlog

import "fmt"

// MutationEvent is an admin add/change/delete on a catalog object
type MutationEvent struct {
	User   string
	Type   string
	ID     int64
	Repr   string
	Action int
}

// Added builds an addition event
func Added(user, objectType string, id int64, repr string) MutationEvent {
	return MutationEvent{User: user, Type: objectType, ID: id, Repr: repr, Action: ActionAddition}
}

// Changed builds a change event
func Changed(user, objectType string, id int64, repr string) MutationEvent {
	return MutationEvent{User: user, Type: objectType, ID: id, Repr: repr, Action: ActionChange}
}

// Deleted builds a deletion event
func Deleted(user, objectType string, id int64, repr string) MutationEvent {
	return MutationEvent{User: user, Type: objectType, ID: id, Repr: repr, Action: ActionDeletion}
}

func (e MutationEvent) Username() string   { return e.User }
func (e MutationEvent) ObjectType() string { return e.Type }
func (e MutationEvent) ObjectID() int64    { return e.ID }
func (e MutationEvent) ObjectRepr() string { return e.Repr }
func (e MutationEvent) ActionFlag() int    { return e.Action }

func (e MutationEvent) Message() string {
	switch e.Action {
	case ActionAddition:
		return fmt.Sprintf("added %s %q", e.Type, e.Repr)
	case ActionChange:
		return fmt.Sprintf("changed %s %q", e.Type, e.Repr)
	case ActionDeletion:
		return fmt.Sprintf("deleted %s %q", e.Type, e.Repr)
	}
	return fmt.Sprintf("unknown action on %s %q", e.Type, e.Repr)
}
