package sway

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// Vec2 is a 2D vector used for sizes and pivots.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for node position, scale and rotation. The renderer
// projects onto the XY plane and uses Rotation.Z as the in-plane angle.
type Vec3 struct {
	X, Y, Z float64
}

// Uniform returns a Vec3 with all three components set to s.
// Handy for uniform scale keyframes.
func Uniform(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Lerp returns the component-wise linear blend between v and to at weight w.
// w = 0 yields v exactly and w = 1 yields to exactly.
func (v Vec3) Lerp(to Vec3, w float64) Vec3 {
	return Vec3{
		lerp(v.X, to.X, w),
		lerp(v.Y, to.Y, w),
		lerp(v.Z, to.Z, w),
	}
}

// Opt is an optional keyframe value. The zero value is unset, which means
// "leave this property alone"; it is never read as zero.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// ClipID names a clip within an Animation ("ScaleUp", "Rotation", ...).
type ClipID string

// DefaultClip is the id given to the clip built by AnimationSystem.CreateAnimation.
const DefaultClip ClipID = "default"

// WrapMode selects what a clip does when elapsed time reaches its final keyframe.
type WrapMode uint8

const (
	WrapOnce WrapMode = iota // stop and pin the final keyframe
	WrapLoop                 // wrap elapsed time modulo the clip duration
)

// String returns the wrap mode name.
func (w WrapMode) String() string {
	switch w {
	case WrapOnce:
		return "once"
	case WrapLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Interpolation selects the blending function used between two keyframes.
type Interpolation uint8

const (
	InterpolationLinear Interpolation = iota // straight lerp (default)
	InterpolationNone                        // snap to the segment start value
	InterpolationCosine                      // (1 - cos(pi*t)) / 2 ease-in/ease-out
	InterpolationEase                        // clip.Ease gween curve
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	case InterpolationNone:
		return "none"
	case InterpolationCosine:
		return "cosine"
	case InterpolationEase:
		return "ease"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of animation event.
type EventType uint8

const (
	EventKeyframe     EventType = iota // fires when playback crosses a keyframe
	EventClipLooped                    // fires each time a looping clip wraps
	EventClipFinished                  // fires when a WrapOnce clip reaches its end
)

// String returns the event type name.
func (e EventType) String() string {
	switch e {
	case EventKeyframe:
		return "keyframe"
	case EventClipLooped:
		return "clip_looped"
	case EventClipFinished:
		return "clip_finished"
	default:
		return "unknown"
	}
}

func lerp(a, b, w float64) float64 {
	if w == 1 {
		return b
	}
	return a + (b-a)*w
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
