package sway

import "fmt"

// Animation is the component that plays named clips on one Node. It is owned
// by that node (see Node.SetAnimation) and keeps a non-owning back-reference
// to it.
//
// Play, PlayAll, Pause, Resume, Stop and Update cascade into every descendant
// node that owns its own Animation. Nodes without one are passed through, so
// deeper descendants are still reached. A caller holding a descendant's
// Animation directly can still control it on its own.
type Animation struct {
	// Interpolation is applied to clips made by CreateClip. Clips added with
	// AddClip keep their own setting.
	Interpolation Interpolation

	node   *Node
	system *AnimationSystem

	clips   map[ClipID]*AnimationClip
	order   []ClipID // registration order; later clips win on shared fields
	created int      // clips ever added

	destroyed bool

	pending []firing // reused per update
}

// NewAnimation creates an Animation and installs it on target (destroying any
// Animation target already had). The result is not registered with any
// AnimationSystem; see AnimationSystem.CreateAnimation for the usual path.
// target may be nil for a detached Animation that is installed later.
func NewAnimation(target *Node) *Animation {
	a := &Animation{clips: make(map[ClipID]*AnimationClip)}
	if target != nil {
		target.SetAnimation(a)
	}
	return a
}

// Node returns the node this Animation drives, or nil when detached.
func (a *Animation) Node() *Node {
	return a.node
}

// System returns the AnimationSystem this Animation is registered with, or nil.
func (a *Animation) System() *AnimationSystem {
	return a.system
}

// --- Clips ---

// CreateClip builds a clip from keyframes, applies the Animation's
// Interpolation, and adds it under id. Panics on unordered keyframe times.
func (a *Animation) CreateClip(id ClipID, keyframes ...Keyframe) *AnimationClip {
	c := NewAnimationClip(keyframes...)
	c.Interpolation = a.Interpolation
	a.AddClip(id, c)
	return c
}

// AddClip adds clip under id. An existing clip with the same id is replaced in
// place and keeps its position in the apply order.
func (a *Animation) AddClip(id ClipID, clip *AnimationClip) {
	if clip == nil {
		panic("sway: cannot add nil clip")
	}
	if a.destroyed {
		if globalDebug {
			debugCheckDestroyed(a, "AddClip")
		}
		return
	}
	if _, exists := a.clips[id]; !exists {
		a.order = append(a.order, id)
	}
	a.clips[id] = clip
	a.created++
}

// GetClip returns the clip registered under id, or nil if there is none.
func (a *Animation) GetClip(id ClipID) *AnimationClip {
	return a.clips[id]
}

// RemoveClip removes the clip registered under id. No-op for unknown ids.
func (a *Animation) RemoveClip(id ClipID) {
	if _, ok := a.clips[id]; !ok {
		return
	}
	delete(a.clips, id)
	for i, o := range a.order {
		if o == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// ClipIDs returns clip ids in registration order. The returned slice MUST NOT
// be mutated.
func (a *Animation) ClipIDs() []ClipID {
	return a.order
}

// IsPlaying reports whether any of this Animation's own clips is playing.
// Descendants are not consulted.
func (a *Animation) IsPlaying() bool {
	for _, id := range a.order {
		if a.clips[id].IsPlaying() {
			return true
		}
	}
	return false
}

// --- Playback ---

// Play starts the clip registered under id, restarting it from zero unless it
// is already playing, and plays the same-id clip on every descendant
// Animation that has one. Panics if this Animation has no such clip, or the
// clip has fewer than two keyframes.
func (a *Animation) Play(id ClipID) {
	if a.destroyed {
		if globalDebug {
			debugCheckDestroyed(a, "Play")
		}
		return
	}
	c := a.clips[id]
	if c == nil {
		panic(fmt.Sprintf("sway: Play of unknown clip %q on %s", id, a.describe()))
	}
	c.play()
	a.eachChild(func(child *Animation) { child.playIfPresent(id) })
}

func (a *Animation) playIfPresent(id ClipID) {
	if c := a.clips[id]; c != nil {
		c.play()
	}
	a.eachChild(func(child *Animation) { child.playIfPresent(id) })
}

// PlayAll plays every clip on this Animation and on all descendant Animations.
func (a *Animation) PlayAll() {
	if a.destroyed {
		return
	}
	for _, id := range a.order {
		a.clips[id].play()
	}
	a.eachChild((*Animation).PlayAll)
}

// Pause pauses every playing clip here and on all descendants. Elapsed time is
// kept; Resume continues from it.
func (a *Animation) Pause() {
	for _, id := range a.order {
		a.clips[id].pause()
	}
	a.eachChild((*Animation).Pause)
}

// PauseClip pauses the clip registered under id here and on descendants.
func (a *Animation) PauseClip(id ClipID) {
	if c := a.clips[id]; c != nil {
		c.pause()
	}
	a.eachChild(func(child *Animation) { child.PauseClip(id) })
}

// Resume continues every paused clip here and on all descendants.
func (a *Animation) Resume() {
	for _, id := range a.order {
		a.clips[id].resume()
	}
	a.eachChild((*Animation).Resume)
}

// ResumeClip continues the paused clip registered under id here and on
// descendants.
func (a *Animation) ResumeClip(id ClipID) {
	if c := a.clips[id]; c != nil {
		c.resume()
	}
	a.eachChild(func(child *Animation) { child.ResumeClip(id) })
}

// Stop halts every clip here and on all descendants and resets their elapsed
// time. Properties already written to nodes are not reverted.
func (a *Animation) Stop() {
	for _, id := range a.order {
		a.clips[id].stop()
	}
	a.eachChild((*Animation).Stop)
}

// StopClip halts the clip registered under id here and on descendants.
// Unknown ids are ignored.
func (a *Animation) StopClip(id ClipID) {
	if c := a.clips[id]; c != nil {
		c.stop()
	}
	a.eachChild(func(child *Animation) { child.StopClip(id) })
}

// Update advances every playing clip by dt seconds, writes their values to
// the node in clip registration order, fires crossed keyframe callbacks in
// ascending time order, then updates descendant Animations.
//
// Panics if dt is negative or no clip was ever added to this Animation.
func (a *Animation) Update(dt float64) {
	if a.destroyed {
		if globalDebug {
			debugCheckDestroyed(a, "Update")
		}
		return
	}
	if dt < 0 {
		panic(fmt.Sprintf("sway: negative dt %v", dt))
	}
	if a.created == 0 {
		panic(fmt.Sprintf("sway: Update on %s which has no clips", a.describe()))
	}
	a.step(dt)
	if a.node != nil {
		updateChildren(a.node, dt)
	}
}

// step advances and applies own clips, then runs callbacks and events.
func (a *Animation) step(dt float64) {
	start := len(a.pending)
	for _, id := range a.order {
		c := a.clips[id]
		if c.state != clipPlaying {
			continue
		}
		c.advance(dt, id, &a.pending)
		if a.node != nil {
			c.apply(a.node)
		}
	}
	if len(a.pending) > start {
		a.fire(start)
	}
}

// fire dispatches pending[start:] in order. A callback may stop, replay or
// destroy this Animation; crossings already collected still fire.
func (a *Animation) fire(start int) {
	var sink EventSink
	if a.system != nil {
		sink = a.system.sink
	}
	node := a.node
	for i := start; i < len(a.pending); i++ {
		f := a.pending[i]
		if sink != nil {
			ev := AnimationEvent{Type: f.kind, Clip: f.clip, Keyframe: f.keyframe}
			if node != nil {
				ev.NodeID = node.ID
				ev.NodeName = node.Name
				ev.EntityID = node.EntityID
			}
			sink.EmitEvent(ev)
		}
		if f.callback != nil {
			f.callback()
		}
	}
	clear(a.pending[start:])
	a.pending = a.pending[:start]
}

// --- Lifecycle ---

// Destroy deregisters the Animation from its system, detaches it from its
// node and drops its clips. Safe to call more than once.
func (a *Animation) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	if a.system != nil {
		a.system.RemoveAnimation(a)
	}
	if a.node != nil && a.node.animation == a {
		a.node.animation = nil
	}
	a.node = nil
	for _, c := range a.clips {
		c.stop()
	}
	a.clips = nil
	a.order = nil
}

// IsDestroyed reports whether Destroy has been called.
func (a *Animation) IsDestroyed() bool {
	return a.destroyed
}

// --- Cascade helpers ---

// eachChild calls fn for the nearest Animation on every path below a's node.
func (a *Animation) eachChild(fn func(*Animation)) {
	if a.node == nil {
		return
	}
	forEachChildAnimation(a.node, fn)
}

// forEachChildAnimation walks n's subtree and calls fn on each descendant
// Animation that has no animated node between it and n. The tree is acyclic
// (AddChild enforces it) so no visited set is kept.
func forEachChildAnimation(n *Node, fn func(*Animation)) {
	for _, child := range n.children {
		if child.animation != nil {
			fn(child.animation)
			continue
		}
		forEachChildAnimation(child, fn)
	}
}

// updateChildren is forEachChildAnimation specialised for Update so the hot
// path does not allocate a closure.
func updateChildren(n *Node, dt float64) {
	for _, child := range n.children {
		if child.animation != nil {
			child.animation.Update(dt)
			continue
		}
		updateChildren(child, dt)
	}
}

func (a *Animation) describe() string {
	if a.node == nil {
		return "detached animation"
	}
	return fmt.Sprintf("animation of node %q", a.node.Name)
}
