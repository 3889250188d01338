package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// ControllerHit describes one contact produced by a capsule sweep.
type ControllerHit struct {
	GameObject    *GameObject
	Point         rl.Vector3
	Normal        rl.Vector3
	MoveDirection rl.Vector3 // normalized requested displacement
	MoveLength    float32
}

// Capsule is the swept shape of a character. Position is the capsule centre.
type Capsule struct {
	Height     float32
	Radius     float32
	SkinWidth  float32
	SlopeLimit float32 // degrees
	StepOffset float32
}

// SegmentHalf is the distance from the centre to either hemisphere centre.
func (c Capsule) SegmentHalf() float32 {
	h := c.Height*0.5 - c.Radius
	if h < 0 {
		return 0
	}
	return h
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
	CheckSphere(center rl.Vector3, radius float32, mask LayerMask) bool
	// SweepCapsule moves a capsule centred at from by delta, ignoring self.
	// It returns the resolved displacement and the contacts in encounter order.
	SweepCapsule(self *GameObject, capsule Capsule, from, delta rl.Vector3) (rl.Vector3, []ControllerHit)
}
