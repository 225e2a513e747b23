package signhands

import (
	"math"

	"github.com/tanema/gween/ease"
)

// cameraNear is the closest depth that still projects.
const cameraNear = 0.05

// Camera is an orbit camera that projects joint positions into a screen
// viewport for hosts that draw the skeleton directly.
type Camera struct {
	// Target is the world-space point the camera orbits and looks at.
	Target Vec3
	// Yaw turns the camera about the vertical axis, Pitch tilts it, in radians.
	Yaw, Pitch float64
	// Distance is how far the camera sits from Target.
	Distance float64
	// Focal is the projection scale in pixels per unit at depth 1.
	Focal float64
	// Viewport is the screen-space rectangle the camera projects into.
	Viewport Rect

	orbit *TweenGroup
}

// NewCamera creates a camera facing the origin from 4 units away.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Distance: 4,
		Focal:    viewport.Height,
		Viewport: viewport,
	}
}

// OrbitTo animates yaw and pitch to the given angles over duration seconds.
func (c *Camera) OrbitTo(yaw, pitch float64, duration float32, easeFn ease.TweenFunc) {
	c.orbit = newTweenGroup(
		[]*float64{&c.Yaw, &c.Pitch},
		[]float64{yaw, pitch},
		duration, easeFn,
	)
}

// Orbiting reports whether an OrbitTo animation is in progress.
func (c *Camera) Orbiting() bool {
	return c.orbit != nil
}

// Update advances the orbit animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.orbit == nil {
		return
	}
	c.orbit.Update(dt)
	if c.orbit.Done {
		c.orbit = nil
	}
}

// Project maps a world point to screen coordinates. ok is false when the
// point is behind the camera.
func (c *Camera) Project(p Vec3) (x, y float64, ok bool) {
	rel := Vec3{p.X - c.Target.X, p.Y - c.Target.Y, p.Z - c.Target.Z}

	sy, cy := math.Sincos(-c.Yaw)
	rx := cy*rel.X + sy*rel.Z
	rz := -sy*rel.X + cy*rel.Z

	sp, cp := math.Sincos(-c.Pitch)
	ry := cp*rel.Y - sp*rz
	rz = sp*rel.Y + cp*rz

	depth := c.Distance - rz
	if depth < cameraNear {
		return 0, 0, false
	}
	cx := c.Viewport.X + c.Viewport.Width/2
	cyScreen := c.Viewport.Y + c.Viewport.Height/2
	return cx + c.Focal*rx/depth, cyScreen - c.Focal*ry/depth, true
}
