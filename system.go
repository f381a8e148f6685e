package sway

import (
	"fmt"
	"time"
)

// EventSink receives animation events. When set on an AnimationSystem, every
// keyframe crossing, loop wrap and clip finish of its registered Animations is
// forwarded here (see the ecs package for a Donburi adapter).
type EventSink interface {
	EmitEvent(event AnimationEvent)
}

// AnimationEvent describes one keyframe crossing or clip state change.
type AnimationEvent struct {
	Type     EventType
	Clip     ClipID
	Keyframe int // index of the crossed keyframe; the final index for loop/finish
	NodeID   uint32
	NodeName string
	EntityID uint32
}

// AnimationSystem is the per-frame driver for root Animations. It keeps a flat,
// non-owning registry: an Animation is driven only while registered, and it
// deregisters itself when destroyed.
//
// There is no package-level instance. Create one per Scene (or per test) with
// NewAnimationSystem.
type AnimationSystem struct {
	animations []*Animation
	dispatch   []*Animation // reused snapshot for Update
	sink       EventSink
	debug      bool
	updating   bool
}

// NewAnimationSystem creates an empty AnimationSystem.
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// CreateAnimation creates an Animation, installs it as target's component
// (destroying any previous one), registers it, and returns it. The returned
// Animation is owned by target. When keyframes are given they become the
// clip DefaultClip.
func (s *AnimationSystem) CreateAnimation(target *Node, keyframes ...Keyframe) *Animation {
	if target == nil {
		panic("sway: CreateAnimation needs a target node")
	}
	if globalDebug {
		debugCheckDisposed(target, "CreateAnimation")
	}
	a := NewAnimation(target)
	if len(keyframes) > 0 {
		a.CreateClip(DefaultClip, keyframes...)
	}
	s.AddAnimation(a)
	return a
}

// AddAnimation registers a for dispatch. Adding an Animation that is already
// registered here is a no-op; one registered with another system is moved.
func (s *AnimationSystem) AddAnimation(a *Animation) {
	if a == nil {
		panic("sway: cannot add nil animation")
	}
	if a.destroyed {
		panic("sway: cannot register a destroyed animation")
	}
	if a.system == s {
		return
	}
	if a.system != nil {
		a.system.RemoveAnimation(a)
	}
	a.system = s
	s.animations = append(s.animations, a)
}

// RemoveAnimation deregisters a. Removing an Animation that is not registered
// here is a no-op.
func (s *AnimationSystem) RemoveAnimation(a *Animation) {
	if a == nil || a.system != s {
		return
	}
	for i, r := range s.animations {
		if r == a {
			copy(s.animations[i:], s.animations[i+1:])
			s.animations[len(s.animations)-1] = nil
			s.animations = s.animations[:len(s.animations)-1]
			break
		}
	}
	a.system = nil
}

// Len returns the number of registered Animations.
func (s *AnimationSystem) Len() int {
	return len(s.animations)
}

// Animations returns the registry in dispatch order. The returned slice MUST
// NOT be mutated.
func (s *AnimationSystem) Animations() []*Animation {
	return s.animations
}

// SetEventSink sets the optional event receiver. Pass nil to disable.
func (s *AnimationSystem) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, operations on
// disposed nodes or destroyed animations panic, deep trees are reported, and
// per-tick stats are logged to stderr.
func (s *AnimationSystem) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set debug flag so that node and
// animation operations (which lack a system pointer) can check it cheaply.
var globalDebug bool

// Update advances every registered root Animation by dt seconds, once each, in
// registry order. A registered Animation whose node sits below another node
// whose Animation is registered here is reached through that ancestor's
// cascade instead, so it advances exactly once per tick.
//
// Animations removed or destroyed during the tick (for example by a keyframe
// callback) are not dispatched afterwards.
func (s *AnimationSystem) Update(dt float64) {
	if s.updating {
		panic("sway: AnimationSystem.Update called from inside Update")
	}
	s.updating = true
	defer func() { s.updating = false }()

	var stats updateStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		stats.registered = len(s.animations)
	}

	s.dispatch = append(s.dispatch[:0], s.animations...)
	for _, a := range s.dispatch {
		if a.system != s {
			continue
		}
		if s.drivenByAncestor(a) {
			continue
		}
		a.Update(dt)
		if s.debug {
			stats.driven++
		}
	}
	clear(s.dispatch)

	if s.debug {
		stats.updateTime = time.Since(t0)
		stats.playing = s.playingClips()
		s.debugLog(stats)
	}
}

// drivenByAncestor reports whether an ancestor of a's node carries an
// Animation registered with s.
func (s *AnimationSystem) drivenByAncestor(a *Animation) bool {
	if a.node == nil {
		return false
	}
	for p := a.node.Parent; p != nil; p = p.Parent {
		if p.animation != nil && p.animation.system == s {
			return true
		}
	}
	return false
}

// playingClips counts playing clips across registered Animations.
func (s *AnimationSystem) playingClips() int {
	n := 0
	for _, a := range s.animations {
		for _, id := range a.order {
			if a.clips[id].IsPlaying() {
				n++
			}
		}
	}
	return n
}

// String returns a short summary for logging.
func (s *AnimationSystem) String() string {
	return fmt.Sprintf("AnimationSystem{registered: %d}", len(s.animations))
}
