// Package ecs provides ECS adapters for signhands.
package ecs

import (
	"github.com/phanxgames/signhands"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SignEventType is the Donburi event type for sign playback events.
// Subscribe to this in your ECS systems to react to signs starting and
// finishing.
var SignEventType = events.NewEventType[signhands.SignEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Playback events are published to SignEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) signhands.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event signhands.SignEvent) {
	SignEventType.Publish(s.world, event)
}
