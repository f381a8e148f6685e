// Package sway is a keyframe scene-animation engine for [Ebitengine].
//
// Sway drives time-based changes to scene-object properties: position, scale,
// rotation, visibility and text scale. Menus, particle bursts and
// level-completion sequences are built from the same four pieces:
//
//   - [Keyframe]: a timestamped snapshot of optional property values plus an
//     optional callback.
//   - [AnimationClip]: an ordered run of keyframes with a [WrapMode], an
//     [Interpolation] and its own playback cursor.
//   - [Animation]: the component attached to one [Node]. It owns named clips,
//     applies them every tick and cascades to descendant animations.
//   - [AnimationSystem]: the per-frame driver and factory. It holds a flat,
//     non-owning registry of root animations.
//
// # Quick start
//
//	system := sway.NewAnimationSystem()
//	banner := sway.NewLabel("banner", "Level Complete!")
//
//	anim := system.CreateAnimation(banner,
//		sway.Keyframe{Time: 0, Scale: sway.Some(sway.Uniform(0)), Visible: sway.Some(true)},
//		sway.Keyframe{Time: 0.2, Scale: sway.Some(sway.Uniform(1))},
//	)
//	anim.Play(sway.DefaultClip)
//
//	// once per frame:
//	system.Update(dt)
//
// A [Scene] bundles a root node with a system and renders boxes and labels
// with ebiten; [Run] opens a window for it.
//
// # Optional fields
//
// Keyframe fields are wrapped in [Opt]. An unset field is absent, not zero:
// the clip leaves that property alone, so two clips playing at once can
// animate different properties of the same node.
//
// # Cascade
//
// Play, PlayAll, Pause, Resume, Stop and Update on an Animation also act on
// every descendant node's Animation. Nodes without one are skipped over, so a
// single PlayAll on a composite object drives all of its animated parts.
//
// # Errors
//
// Authoring mistakes (fewer than two keyframes, unordered times, updating an
// Animation with no clips) panic. Lookups that may legitimately miss, such as
// [Animation.GetClip] and [Node.Animation], return nil.
//
// Events can be forwarded to an ECS world with the ecs subpackage.
//
// [Ebitengine]: https://ebitengine.org
package sway
