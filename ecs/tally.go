package ecs

import (
	canvasutils "github.com/FluffyBrudy/canvas-utils"

	"github.com/yohamta/donburi"
)

// Tally counts live members per container name, as seen through membership
// events. Counts lag the containers until the world's events are processed.
type Tally struct {
	Counts map[string]int
}

// TallyComponent is the Donburi component holding a Tally.
var TallyComponent = donburi.NewComponentType[Tally]()

// TrackMembership creates an entity carrying a Tally and subscribes it to
// MembershipEventType. Removing the entity stops the counting.
//
// Group.Empty resets a container's count. A GroupSingle overwrite arrives as
// a removal of the replaced sprite followed by an addition, so a GroupSingle
// never counts more than one member.
func TrackMembership(world donburi.World) donburi.Entity {
	entity := world.Create(TallyComponent)
	TallyComponent.SetValue(world.Entry(entity), Tally{Counts: make(map[string]int)})

	MembershipEventType.Subscribe(world, func(w donburi.World, e canvasutils.MembershipEvent) {
		if !w.Valid(entity) {
			return
		}
		t := TallyComponent.Get(w.Entry(entity))
		switch e.Type {
		case canvasutils.EventAdded:
			t.Counts[e.Container]++
		case canvasutils.EventRemoved:
			if t.Counts[e.Container] > 1 {
				t.Counts[e.Container]--
			} else {
				delete(t.Counts, e.Container)
			}
		case canvasutils.EventCleared:
			delete(t.Counts, e.Container)
		}
	})
	return entity
}

// MemberCount returns the tracked count for container, or 0.
func MemberCount(world donburi.World, entity donburi.Entity, container string) int {
	if !world.Valid(entity) {
		return 0
	}
	return TallyComponent.Get(world.Entry(entity)).Counts[container]
}
