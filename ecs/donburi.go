package ecs

import (
	canvasutils "github.com/FluffyBrudy/canvas-utils"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MembershipEventType is the Donburi event type for canvasutils membership
// events. Subscribe to this in your ECS systems to react to sprites joining
// or leaving groups.
var MembershipEventType = events.NewEventType[canvasutils.MembershipEvent]()

type donburiStore struct {
	world donburi.World
}

var _ canvasutils.EventStore = (*donburiStore)(nil)

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Membership events are published to MembershipEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) canvasutils.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event canvasutils.MembershipEvent) {
	MembershipEventType.Publish(s.world, event)
}
