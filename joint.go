package signhands

import "sync/atomic"

// jointIDCounter is shared by every avatar in the process.
var jointIDCounter atomic.Uint32

func nextJointID() uint32 {
	return jointIDCounter.Add(1)
}

// Joint is one element of a skeletal tree. A joint sits at Offset from its
// parent (in the parent's rotated frame) and rotates its subtree by Rotation.
type Joint struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Joint
	children []*Joint

	// Transform (local)
	Offset   Vec3
	Rotation Vec3

	// Computed during UpdateTransforms
	worldTransform mat34
	transformDirty bool

	disposed bool
}

// NewJoint creates a detached joint at the given offset from its future parent.
func NewJoint(name string, offset Vec3) *Joint {
	return &Joint{
		ID:             nextJointID(),
		Name:           name,
		Offset:         offset,
		worldTransform: identityTransform,
		transformDirty: true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this joint's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this joint (cycle).
func (j *Joint) AddChild(child *Joint) {
	if child == nil {
		panic("signhands: cannot add nil child")
	}
	if isAncestor(child, j) {
		panic("signhands: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = j
	j.children = append(j.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this joint.
// Panics if child.Parent != j.
func (j *Joint) RemoveChild(child *Joint) {
	if child.Parent != j {
		panic("signhands: child's parent is not this joint")
	}
	j.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this joint from its parent.
// No-op if this joint has no parent.
func (j *Joint) RemoveFromParent() {
	if j.Parent == nil {
		return
	}
	j.Parent.RemoveChild(j)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (j *Joint) Children() []*Joint {
	return j.children
}

// NumChildren returns the number of children.
func (j *Joint) NumChildren() int {
	return len(j.children)
}

// ChildAt returns the child at the given index.
func (j *Joint) ChildAt(index int) *Joint {
	return j.children[index]
}

// --- Disposal ---

// Dispose removes this joint from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (j *Joint) Dispose() {
	if j.disposed {
		return
	}
	j.RemoveFromParent()
	j.dispose()
}

func (j *Joint) dispose() {
	j.disposed = true
	j.ID = 0
	for _, child := range j.children {
		child.Parent = nil
		child.dispose()
	}
	j.children = nil
	j.Parent = nil
}

// IsDisposed returns true if this joint has been disposed.
func (j *Joint) IsDisposed() bool {
	return j.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of joint.
func isAncestor(candidate, joint *Joint) bool {
	for p := joint; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from j.children without clearing child.Parent.
func (j *Joint) removeChildByPtr(child *Joint) {
	for i, c := range j.children {
		if c == child {
			copy(j.children[i:], j.children[i+1:])
			j.children[len(j.children)-1] = nil
			j.children = j.children[:len(j.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on joint and all its descendants.
func markSubtreeDirty(joint *Joint) {
	joint.transformDirty = true
	for _, child := range joint.children {
		markSubtreeDirty(child)
	}
}
