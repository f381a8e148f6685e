// Package ecs provides ECS adapters for sway's animation events.
//
// The primary adapter is [NewDonburiSink], which bridges sway animation
// events (keyframe crossings, loop wraps, clip finishes) into a [Donburi]
// world as typed events. Subscribe to [AnimationEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.Animations().SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
