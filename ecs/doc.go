// Package ecs provides ECS adapters for canvasutils membership events.
//
// The primary adapter is [NewDonburiStore], which bridges group and sprite
// membership changes (added, removed, cleared) into a [Donburi] world as typed
// events. Subscribe to [MembershipEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	enemies.SetEventStore(store)
//
// [TrackMembership] attaches a [Tally] component that keeps live member counts
// per container from those events.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
