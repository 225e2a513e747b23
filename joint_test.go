package signhands

import (
	"sync"
	"testing"
)

func TestNewJointDefaults(t *testing.T) {
	j := NewJoint("wrist", Vec3{X: 1})
	if j.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if j.Name != "wrist" {
		t.Errorf("Name = %q, want %q", j.Name, "wrist")
	}
	if j.Offset != (Vec3{X: 1}) {
		t.Errorf("Offset = %+v", j.Offset)
	}
	if !j.transformDirty {
		t.Error("new joint should be dirty")
	}
}

func TestJointIDsUnique(t *testing.T) {
	a := NewJoint("a", Vec3{})
	b := NewJoint("b", Vec3{})
	if a.ID == b.ID {
		t.Errorf("IDs collide: %d", a.ID)
	}
}

func TestAddChild(t *testing.T) {
	parent := NewJoint("parent", Vec3{})
	child := NewJoint("child", Vec3{})
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewJoint("a", Vec3{})
	b := NewJoint("b", Vec3{})
	child := NewJoint("child", Vec3{})
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be b")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewJoint("p", Vec3{}).AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewJoint("a", Vec3{})
	b := NewJoint("b", Vec3{})
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.AddChild(a)
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewJoint("a", Vec3{})
	b := NewJoint("b", Vec3{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.RemoveChild(b)
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewJoint("parent", Vec3{})
	c1 := NewJoint("c1", Vec3{})
	c2 := NewJoint("c2", Vec3{})
	parent.AddChild(c1)
	parent.AddChild(c2)

	c1.RemoveFromParent()
	if c1.Parent != nil {
		t.Error("c1.Parent should be nil")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != c2 {
		t.Errorf("children = %v", parent.Children())
	}

	// No-op without a parent.
	c1.RemoveFromParent()
}

func TestDisposeRecursive(t *testing.T) {
	root := NewJoint("root", Vec3{})
	child := NewJoint("child", Vec3{})
	grandchild := NewJoint("grandchild", Vec3{})
	root.AddChild(child)
	child.AddChild(grandchild)

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if root.IsDisposed() {
		t.Error("root should not be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed child still attached")
	}
	if child.ID != 0 {
		t.Error("disposed joint keeps its ID")
	}

	// Second dispose is a no-op.
	child.Dispose()
}

func TestJointIDsUniqueAcrossGoroutines(t *testing.T) {
	const workers, perWorker = 8, 200
	ids := make([][]uint32, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids[w] = append(ids[w], NewJoint("j", Vec3{}).ID)
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[uint32]bool, workers*perWorker)
	for _, list := range ids {
		for _, id := range list {
			if seen[id] {
				t.Fatalf("duplicate ID %d", id)
			}
			seen[id] = true
		}
	}
}
