package sway

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Keyframe is a timestamped, partially specified snapshot of node properties.
// Only the fields that are Set are written to the node; an unset field means
// "do not touch this property around this keyframe".
//
// Keyframes are authored as in-code literals:
//
//	sway.Keyframe{Time: 0, Scale: sway.Some(sway.Uniform(0)), Visible: sway.Some(true)}
type Keyframe struct {
	// Time is seconds from clip start. Strictly increasing within a clip.
	Time float64

	Position  Opt[Vec3]
	Scale     Opt[Vec3]
	Rotation  Opt[Vec3]
	Visible   Opt[bool]
	TextScale Opt[float64]

	// Callback, if non-nil, runs once each time playback crosses this keyframe.
	Callback func()
}

// weight maps a segment fraction t in [0, 1] to a blend weight.
func weight(mode Interpolation, fn ease.TweenFunc, t float64) float64 {
	switch mode {
	case InterpolationCosine:
		return (1 - math.Cos(math.Pi*t)) / 2
	case InterpolationEase:
		if fn == nil {
			return t
		}
		// gween curves take (t, begin, change, duration).
		return float64(fn(float32(t), 0, 1, 1))
	default:
		return t
	}
}

// segmentFraction returns clamp((elapsed - a.Time) / (b.Time - a.Time), 0, 1).
func segmentFraction(a, b *Keyframe, elapsed float64) float64 {
	span := b.Time - a.Time
	if span <= 0 {
		return 1
	}
	return clamp01((elapsed - a.Time) / span)
}

// applySegment writes the properties the segment [a, b) defines onto n at
// elapsed time. Continuous fields are written only when both ends define them
// (None: when a defines them). Visible is discrete and follows a.
func applySegment(n *Node, a, b *Keyframe, elapsed float64, mode Interpolation, fn ease.TweenFunc) {
	if mode == InterpolationNone {
		applySnap(n, a)
		return
	}

	w := weight(mode, fn, segmentFraction(a, b, elapsed))

	if a.Position.Set && b.Position.Set {
		n.SetPosition(a.Position.Value.Lerp(b.Position.Value, w))
	}
	if a.Scale.Set && b.Scale.Set {
		n.SetScale(a.Scale.Value.Lerp(b.Scale.Value, w))
	}
	if a.Rotation.Set && b.Rotation.Set {
		n.SetRotation(a.Rotation.Value.Lerp(b.Rotation.Value, w))
	}
	if a.TextScale.Set && b.TextScale.Set {
		n.TextScale = lerp(a.TextScale.Value, b.TextScale.Value, w)
	}
	if a.Visible.Set {
		n.Visible = a.Visible.Value
	}
}

// applySnap writes every field k defines onto n verbatim. Used for
// InterpolationNone and for pinning the final keyframe of a finished clip.
func applySnap(n *Node, k *Keyframe) {
	if k.Position.Set {
		n.SetPosition(k.Position.Value)
	}
	if k.Scale.Set {
		n.SetScale(k.Scale.Value)
	}
	if k.Rotation.Set {
		n.SetRotation(k.Rotation.Value)
	}
	if k.TextScale.Set {
		n.TextScale = k.TextScale.Value
	}
	if k.Visible.Set {
		n.Visible = k.Visible.Value
	}
}
