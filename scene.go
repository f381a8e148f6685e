package sway

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree and drives an
// AnimationSystem once per tick.
type Scene struct {
	// ClearColor fills the screen before drawing when used with Run.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNGs. Defaults to "screenshots".
	ScreenshotDir string

	root       *Node
	animations *AnimationSystem
	debug      bool

	updateFunc func() error

	commands    []RenderCommand
	face        *text.GoTextFace
	screenshots []string
}

// NewScene creates a scene with a pre-created root node, driving the given
// AnimationSystem. A nil system gets a fresh one; systems are never shared
// implicitly between scenes.
func NewScene(animations *AnimationSystem) *Scene {
	if animations == nil {
		animations = NewAnimationSystem()
	}
	return &Scene{
		root:       NewNode("root"),
		animations: animations,
		commands:   make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animations returns the AnimationSystem this scene drives.
func (s *Scene) Animations() *AnimationSystem {
	return s.animations
}

// Animate is shorthand for s.Animations().CreateAnimation.
func (s *Scene) Animate(target *Node, keyframes ...Keyframe) *Animation {
	return s.animations.CreateAnimation(target, keyframes...)
}

// SetUpdateFunc sets a callback run at the start of every Update, before
// animations advance. Used by Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances one tick at the engine's fixed rate (1/TPS seconds).
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances animations by dt seconds and refreshes world transforms.
func (s *Scene) Step(dt float64) {
	s.animations.Update(dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Draw traverses the scene tree, emits render commands and submits them to
// the given screen image. Queued screenshots are taken afterwards.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.commands = s.commands[:0]
	s.traverse(s.root)
	s.submit(screen)
	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode on the scene and its system.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.animations.SetDebugMode(enabled)
}
