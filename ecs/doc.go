// Package ecs provides ECS adapters for signhands playback events.
//
// The primary adapter is [NewDonburiSink], which bridges sign playback
// events (a sign started, a sign finished, the queue drained) into a
// [Donburi] world as typed events. Subscribe to [SignEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	avatar.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
