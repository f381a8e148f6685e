package sway

import "testing"

func TestNewSceneHasRoot(t *testing.T) {
	s := NewScene(nil)
	if s.Root() == nil {
		t.Fatal("Root() should not be nil")
	}
	if s.Root().Name != "root" {
		t.Errorf("root name = %q, want %q", s.Root().Name, "root")
	}
	if s.Animations() == nil {
		t.Error("nil system should be replaced by a fresh one")
	}
}

func TestNewSceneUsesInjectedSystem(t *testing.T) {
	sys := NewAnimationSystem()
	s := NewScene(sys)
	if s.Animations() != sys {
		t.Error("scene should drive the injected system")
	}
}

func TestScenesDoNotShareSystems(t *testing.T) {
	a := NewScene(nil)
	b := NewScene(nil)
	if a.Animations() == b.Animations() {
		t.Error("each scene should get its own system")
	}
}

func TestSceneStepAdvancesAnimationsAndTransforms(t *testing.T) {
	s := NewScene(nil)
	box := NewBox("box", 10, 10, ColorWhite)
	s.Root().AddChild(box)
	s.Animate(box, positionClip()...).Play(DefaultClip)

	s.Step(0.5)

	if box.Position.X != 5 {
		t.Errorf("x = %v, want 5", box.Position.X)
	}
	x, _ := box.WorldPosition()
	assertNear(t, "world x", x, 5)
}

func TestSceneAnimateRegisters(t *testing.T) {
	s := NewScene(nil)
	n := NewNode("n")
	a := s.Animate(n, twoKeyframes()...)
	if a.System() != s.Animations() {
		t.Error("Animate should register with the scene's system")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene(nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if !s.debug || !s.Animations().debug || !globalDebug {
		t.Error("debug mode should reach the scene and its system")
	}
}

func TestSceneSetUpdateFunc(t *testing.T) {
	s := NewScene(nil)
	called := false
	s.SetUpdateFunc(func() error {
		called = true
		return nil
	})
	g := &game{scene: s, cfg: DefaultRunConfig}
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !called {
		t.Error("update func should run each tick")
	}
}
