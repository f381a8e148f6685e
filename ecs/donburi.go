package ecs

import (
	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for sway animation events.
// Subscribe to this in your ECS systems to react to keyframes and clip ends.
var AnimationEventType = events.NewEventType[sway.AnimationEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Animation events are published to AnimationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sway.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sway.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}

// FinishedClips returns a subscriber that appends the clip id of every
// EventClipFinished for the given entity to out. Handy for systems that wait
// on one entity's animation.
func FinishedClips(entity uint32, out *[]sway.ClipID) func(donburi.World, sway.AnimationEvent) {
	return func(_ donburi.World, e sway.AnimationEvent) {
		if e.Type == sway.EventClipFinished && e.EntityID == entity {
			*out = append(*out, e.Clip)
		}
	}
}
