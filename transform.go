package signhands

import "math"

// mat34 is a rigid 3D transform: a row-major 3x3 rotation followed by a
// translation column.
//
//	| m0 m1 m2  m9  |
//	| m3 m4 m5  m10 |
//	| m6 m7 m8  m11 |
type mat34 [12]float64

// identityTransform is the identity rigid transform.
var identityTransform = mat34{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// rotationMatrix builds Rz * Ry * Rx for Euler angles r, so X is applied first.
func rotationMatrix(r Vec3) mat34 {
	sx, cx := math.Sincos(r.X)
	sy, cy := math.Sincos(r.Y)
	sz, cz := math.Sincos(r.Z)
	return mat34{
		cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx,
		sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx,
		-sy, cy * sx, cy * cx,
		0, 0, 0,
	}
}

// computeLocalTransform returns the joint's transform relative to its parent:
// Rotate(Rotation) then Translate(Offset).
func computeLocalTransform(j *Joint) mat34 {
	m := rotationMatrix(j.Rotation)
	m[9], m[10], m[11] = j.Offset.X, j.Offset.Y, j.Offset.Z
	return m
}

// multiplyTransform returns parent * child.
func multiplyTransform(p, c mat34) mat34 {
	var out mat34
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = p[row*3]*c[col] + p[row*3+1]*c[3+col] + p[row*3+2]*c[6+col]
		}
		out[9+row] = p[row*3]*c[9] + p[row*3+1]*c[10] + p[row*3+2]*c[11] + p[9+row]
	}
	return out
}

// transformPoint applies m to v.
func transformPoint(m mat34, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[9],
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z + m[10],
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z + m[11],
	}
}

// updateWorldTransform recomputes a joint's worldTransform.
// parentRecomputed forces recomputation even when the joint is clean.
func updateWorldTransform(j *Joint, parent mat34, parentRecomputed bool) {
	recompute := j.transformDirty || parentRecomputed
	if recompute {
		j.worldTransform = multiplyTransform(parent, computeLocalTransform(j))
		j.transformDirty = false
	}
	for _, child := range j.children {
		updateWorldTransform(child, j.worldTransform, recompute)
	}
}

// UpdateTransforms refreshes world transforms for root and its subtree.
// Root is treated as a top-level joint even if it has a parent.
func UpdateTransforms(root *Joint) {
	updateWorldTransform(root, identityTransform, false)
}

// --- Transform property setters ---

// SetRotation sets the joint's Euler rotation and marks it dirty.
func (j *Joint) SetRotation(r Vec3) {
	j.Rotation = r
	j.transformDirty = true
}

// SetOffset sets the joint's bone offset and marks it dirty.
func (j *Joint) SetOffset(o Vec3) {
	j.Offset = o
	j.transformDirty = true
}

// MarkDirty forces recomputation on the next UpdateTransforms.
// Useful after bulk-setting fields directly.
func (j *Joint) MarkDirty() {
	j.transformDirty = true
}

// WorldPosition returns the joint's origin in world space as of the last
// UpdateTransforms.
func (j *Joint) WorldPosition() Vec3 {
	return Vec3{j.worldTransform[9], j.worldTransform[10], j.worldTransform[11]}
}

// LocalToWorld converts a point in this joint's space to world space.
func (j *Joint) LocalToWorld(p Vec3) Vec3 {
	return transformPoint(j.worldTransform, p)
}
