package sway

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// clipState is the playback state of an AnimationClip.
type clipState uint8

const (
	clipStopped clipState = iota
	clipPlaying
	clipPaused
)

// firing is a keyframe crossing or clip event collected during an update.
// Callbacks and sink events run after all clips have been applied.
type firing struct {
	kind     EventType
	clip     ClipID
	keyframe int
	callback func()
}

// AnimationClip is an ordered sequence of keyframes plus a wrap mode and its
// own playback cursor. Keyframes are fixed at construction; only the playback
// state changes afterwards.
type AnimationClip struct {
	// WrapMode selects stop-at-end (WrapOnce) or wrap-around (WrapLoop).
	WrapMode WrapMode
	// Interpolation selects the blending function between keyframes.
	Interpolation Interpolation
	// Ease is the gween curve used when Interpolation is InterpolationEase.
	Ease ease.TweenFunc
	// Speed multiplies dt. Defaults to 1.
	Speed float64

	keyframes []Keyframe

	state        clipState
	finished     bool
	elapsed      float64
	segment      int // index of the keyframe starting the active segment
	nextKeyframe int // index of the next keyframe whose crossing has not fired
}

// NewAnimationClip creates a WrapOnce, linearly interpolated clip from the
// given keyframes. The slice is copied. Panics if keyframe times are negative
// or not strictly increasing.
func NewAnimationClip(keyframes ...Keyframe) *AnimationClip {
	kf := make([]Keyframe, len(keyframes))
	copy(kf, keyframes)
	checkKeyframeOrder(kf)
	return &AnimationClip{
		Speed:     1,
		keyframes: kf,
	}
}

// checkKeyframeOrder panics unless times start at >= 0 and strictly increase.
func checkKeyframeOrder(kf []Keyframe) {
	for i := range kf {
		if i == 0 {
			if kf[0].Time < 0 {
				panic(fmt.Sprintf("sway: keyframe 0 has negative time %v", kf[0].Time))
			}
			continue
		}
		if !(kf[i].Time > kf[i-1].Time) {
			panic(fmt.Sprintf("sway: keyframe %d time %v is not after keyframe %d time %v",
				i, kf[i].Time, i-1, kf[i-1].Time))
		}
	}
}

// IsPlaying reports whether the clip is advancing on Update.
func (c *AnimationClip) IsPlaying() bool {
	return c.state == clipPlaying
}

// IsPaused reports whether the clip is paused (elapsed time kept).
func (c *AnimationClip) IsPaused() bool {
	return c.state == clipPaused
}

// IsFinished reports whether a WrapOnce clip ran to its end since it was last
// played or stopped.
func (c *AnimationClip) IsFinished() bool {
	return c.finished
}

// Elapsed returns the playback position in seconds. For looping clips it is
// always in [0, Duration).
func (c *AnimationClip) Elapsed() float64 {
	return c.elapsed
}

// Duration returns the time of the final keyframe, or 0 for an empty clip.
func (c *AnimationClip) Duration() float64 {
	if len(c.keyframes) == 0 {
		return 0
	}
	return c.keyframes[len(c.keyframes)-1].Time
}

// Segment returns the index of the keyframe that starts the active segment.
func (c *AnimationClip) Segment() int {
	return c.segment
}

// Len returns the number of keyframes.
func (c *AnimationClip) Len() int {
	return len(c.keyframes)
}

// Keyframes returns the clip's keyframes. The returned slice MUST NOT be mutated.
func (c *AnimationClip) Keyframes() []Keyframe {
	return c.keyframes
}

// --- State transitions ---

// play starts the clip from the beginning unless it is already playing.
func (c *AnimationClip) play() {
	if len(c.keyframes) < 2 {
		panic(fmt.Sprintf("sway: cannot play a clip with %d keyframes (need at least 2)", len(c.keyframes)))
	}
	checkKeyframeOrder(c.keyframes)
	if c.state == clipPlaying {
		return
	}
	c.rewind()
	c.state = clipPlaying
}

func (c *AnimationClip) pause() {
	if c.state == clipPlaying {
		c.state = clipPaused
	}
}

func (c *AnimationClip) resume() {
	if c.state == clipPaused {
		c.state = clipPlaying
	}
}

// stop halts playback and resets the cursor. Properties already written to
// the node are left as they are.
func (c *AnimationClip) stop() {
	c.state = clipStopped
	c.rewind()
}

func (c *AnimationClip) rewind() {
	c.finished = false
	c.elapsed = 0
	c.segment = 0
	c.nextKeyframe = 0
}

// advance moves the cursor forward by dt, appending every keyframe crossing
// (and loop/finish events) to out in time order. Returns true when a WrapOnce
// clip reached its end during this step.
func (c *AnimationClip) advance(dt float64, id ClipID, out *[]firing) bool {
	step := dt * c.Speed
	if step < 0 {
		panic(fmt.Sprintf("sway: negative time step %v (dt %v, speed %v)", step, dt, c.Speed))
	}
	c.elapsed += step
	last := len(c.keyframes) - 1
	duration := c.keyframes[last].Time

	if c.WrapMode == WrapLoop {
		for c.elapsed >= duration {
			c.collect(id, math.Inf(1), out)
			*out = append(*out, firing{kind: EventClipLooped, clip: id, keyframe: last})
			c.elapsed -= duration
			c.segment = 0
			c.nextKeyframe = 0
		}
		c.collect(id, c.elapsed, out)
		c.seek()
		return false
	}

	if c.elapsed >= duration {
		c.collect(id, math.Inf(1), out)
		*out = append(*out, firing{kind: EventClipFinished, clip: id, keyframe: last})
		c.elapsed = duration
		c.segment = last - 1
		c.state = clipStopped
		c.finished = true
		return true
	}
	c.collect(id, c.elapsed, out)
	c.seek()
	return false
}

// collect appends crossings for every pending keyframe at or before limit.
func (c *AnimationClip) collect(id ClipID, limit float64, out *[]firing) {
	for c.nextKeyframe < len(c.keyframes) && c.keyframes[c.nextKeyframe].Time <= limit {
		*out = append(*out, firing{
			kind:     EventKeyframe,
			clip:     id,
			keyframe: c.nextKeyframe,
			callback: c.keyframes[c.nextKeyframe].Callback,
		})
		c.nextKeyframe++
	}
}

// seek moves the segment cursor forward to the segment containing elapsed.
func (c *AnimationClip) seek() {
	for c.segment < len(c.keyframes)-2 && c.keyframes[c.segment+1].Time <= c.elapsed {
		c.segment++
	}
}

// apply writes the clip's current values onto n.
func (c *AnimationClip) apply(n *Node) {
	if c.finished {
		applySnap(n, &c.keyframes[len(c.keyframes)-1])
		return
	}
	applySegment(n, &c.keyframes[c.segment], &c.keyframes[c.segment+1], c.elapsed, c.Interpolation, c.Ease)
}
