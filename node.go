package sway

// nodeIDCounter is a plain counter, not atomic. sway is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene object: a tree element carrying the transform, visibility
// and text-scale properties that keyframes drive, plus one optional Animation
// component. A single flat struct is used for containers, boxes and labels.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). The renderer uses X/Y of Position and Scale and
	// Rotation.Z in radians.
	Position Vec3
	Scale    Vec3
	Rotation Vec3
	Pivot    Vec2

	// Computed during Scene.Update.
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Visible bool
	Alpha   float64

	// Appearance. Size is the box extent in pixels; zero size draws nothing.
	Size  Vec2
	Color Color

	// Text label. TextScale multiplies the scene's base font size.
	Text      string
	TextScale float64

	// Metadata
	UserData any
	EntityID uint32

	// Component slot; owned exclusively by this node.
	animation *Animation

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = Vec3{1, 1, 1}
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.TextScale = 1
	n.transformDirty = true
}

// NewNode creates an empty container node.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewBox creates a node that renders as a solid rectangle of the given size,
// centered on its position.
func NewBox(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Size: Vec2{w, h}}
	nodeDefaults(n)
	n.Color = c
	n.Pivot = Vec2{w / 2, h / 2}
	return n
}

// NewLabel creates a node that renders text centered on its position.
func NewLabel(name, text string) *Node {
	n := &Node{Name: name, Text: text}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sway: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("sway: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("sway: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("sway: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("sway: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node. The child keeps its Animation.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sway: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("sway: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	markSubtreeDirty(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindChild returns the first descendant (depth-first, pre-order) with the
// given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, child := range n.children {
		if child.Name == name {
			return child
		}
		if found := child.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Animation component ---

// Animation returns the node's Animation component, or nil if it has none.
func (n *Node) Animation() *Animation {
	return n.animation
}

// SetAnimation installs a as this node's Animation component. Any previous
// component is destroyed (and deregistered from its system). If a is attached
// to another node it is moved here. Passing nil destroys the current one.
func (n *Node) SetAnimation(a *Animation) {
	if n.animation == a {
		return
	}
	if globalDebug {
		debugCheckDisposed(n, "SetAnimation")
	}
	if old := n.animation; old != nil {
		old.Destroy()
	}
	if a == nil {
		return
	}
	if a.destroyed {
		panic("sway: cannot install a destroyed animation")
	}
	if a.node != nil && a.node != n {
		a.node.animation = nil
	}
	a.node = n
	n.animation = a
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, destroys
// its Animation, and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	if n.animation != nil {
		n.animation.Destroy()
	}
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
