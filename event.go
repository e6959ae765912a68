package canvasutils

// EventType identifies a kind of membership change.
type EventType uint8

const (
	EventAdded   EventType = iota // an entity joined a container
	EventRemoved                  // an entity left a container through Remove or Kill
	EventCleared                  // Group.Empty dropped every member
)

func (t EventType) String() string {
	switch t {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// MembershipEvent describes one membership change. SpriteID and SpriteName
// are zero for EventCleared.
type MembershipEvent struct {
	Type       EventType
	Container  string
	SpriteID   uint32
	SpriteName string
}

// EventStore receives membership events from containers it is attached to.
// Events are emitted after the container and sprite agree on the new state.
// See the ecs sub-package for a Donburi-backed implementation.
type EventStore interface {
	EmitEvent(event MembershipEvent)
}

func newMembershipEvent(typ EventType, container string, s *Sprite) MembershipEvent {
	ev := MembershipEvent{Type: typ, Container: container}
	if s != nil {
		ev.SpriteID = s.ID
		ev.SpriteName = s.Name
	}
	return ev
}
