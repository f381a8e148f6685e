package sway

import "testing"

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	assertNodeDefaults(t, n, "test")
	if n.Size != (Vec2{}) {
		t.Errorf("Size = %v, want zero", n.Size)
	}
}

func TestNewBoxDefaults(t *testing.T) {
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	n := NewBox("box", 40, 20, c)
	assertNodeDefaults(t, n, "box")
	if n.Size != (Vec2{40, 20}) {
		t.Errorf("Size = %v, want {40 20}", n.Size)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
	if n.Pivot != (Vec2{20, 10}) {
		t.Errorf("Pivot = %v, want centered {20 10}", n.Pivot)
	}
}

func TestNewLabelDefaults(t *testing.T) {
	n := NewLabel("label", "hello")
	assertNodeDefaults(t, n, "label")
	if n.Text != "hello" {
		t.Errorf("Text = %q, want %q", n.Text, "hello")
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Scale != (Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want {1 1 1}", n.Scale)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.TextScale != 1 {
		t.Errorf("TextScale = %v, want 1", n.TextScale)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Animation() != nil {
		t.Error("new node should have no animation")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewLabel("c", "c")
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent)
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewNode("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewNode("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- AddChildAt ---

func TestAddChildAt(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1)

	if parent.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestAddChildAtOutOfRangePanic(t *testing.T) {
	parent := NewNode("parent")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out of range index, got none")
		}
	}()
	parent.AddChildAt(NewNode("a"), 3)
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveChildAt(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	removed := parent.RemoveChildAt(1)
	if removed != b {
		t.Error("removed should be b")
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != c {
		t.Error("remaining children should be [a, c]")
	}
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewNode("orphan")
	n.RemoveFromParent() // should not panic
	if n.Parent != nil {
		t.Error("Parent should remain nil")
	}
}

func TestRemoveChildren(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("detached children should have nil Parent")
	}
}

// --- FindChild ---

func TestFindChildDepthFirst(t *testing.T) {
	root := NewNode("root")
	panel := NewNode("panel")
	button := NewNode("button")
	other := NewNode("button")
	root.AddChild(panel)
	panel.AddChild(button)
	root.AddChild(other)

	if got := root.FindChild("button"); got != button {
		t.Error("FindChild should return the first match in pre-order")
	}
	if got := root.FindChild("missing"); got != nil {
		t.Errorf("FindChild(missing) = %v, want nil", got)
	}
}

// --- Animation slot ---

func TestSetAnimationReplacesAndDestroysPrevious(t *testing.T) {
	sys := NewAnimationSystem()
	n := NewNode("n")
	first := sys.CreateAnimation(n, twoKeyframes()...)
	second := NewAnimation(nil)

	n.SetAnimation(second)

	if n.Animation() != second {
		t.Error("Animation() should return the new component")
	}
	if !first.IsDestroyed() {
		t.Error("previous animation should be destroyed")
	}
	if sys.Len() != 0 {
		t.Errorf("system Len = %d, want 0 after replaced animation deregistered", sys.Len())
	}
	if second.Node() != n {
		t.Error("new animation should point back at the node")
	}
}

func TestSetAnimationMovesBetweenNodes(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	anim := NewAnimation(a)

	b.SetAnimation(anim)

	if a.Animation() != nil {
		t.Error("a should no longer own the animation")
	}
	if b.Animation() != anim || anim.Node() != b {
		t.Error("animation should now belong to b")
	}
}

func TestSetAnimationNilDestroys(t *testing.T) {
	n := NewNode("n")
	anim := NewAnimation(n)
	n.SetAnimation(nil)
	if n.Animation() != nil {
		t.Error("Animation() should be nil")
	}
	if !anim.IsDestroyed() {
		t.Error("removed animation should be destroyed")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	root := NewNode("root")
	root.AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("whole subtree should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 || grandchild.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
}

func TestDisposeDestroysAnimations(t *testing.T) {
	sys := NewAnimationSystem()
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	pa := sys.CreateAnimation(parent, twoKeyframes()...)
	ca := sys.CreateAnimation(child, twoKeyframes()...)

	parent.Dispose()

	if !pa.IsDestroyed() || !ca.IsDestroyed() {
		t.Error("animations in a disposed subtree should be destroyed")
	}
	if sys.Len() != 0 {
		t.Errorf("system Len = %d, want 0", sys.Len())
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewNode("n")
	n.Dispose()
	n.Dispose() // should not panic
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}

// --- Dirty propagation ---

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	child.AddChild(grandchild)

	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)

	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("subtree should be dirty after AddChild")
	}
}

// twoKeyframes is a minimal valid clip body used across tests.
func twoKeyframes() []Keyframe {
	return []Keyframe{
		{Time: 0, Position: Some(Vec3{})},
		{Time: 1, Position: Some(Vec3{X: 10})},
	}
}
