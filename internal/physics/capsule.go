package physics

import (
	"locomotion/internal/components"
	"locomotion/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxSweepSteps = 32
	resolveIters  = 4
	stepClearance = 0.01
)

var worldUp = rl.Vector3{Y: 1}

type contact struct {
	point  rl.Vector3
	normal rl.Vector3 // points from the surface towards the capsule
	depth  float32
}

// shape is a collider snapshot taken for one sweep.
type shape struct {
	obj    *engine.GameObject
	box    OBB
	isBox  bool
	center rl.Vector3
	radius float32
}

func shapesOf(obj *engine.GameObject) []shape {
	var out []shape
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		out = append(out, shape{obj: obj, box: boxOBB(box), isBox: true})
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		out = append(out, shape{obj: obj, center: sphere.GetCenter(), radius: sphere.WorldRadius()})
	}
	return out
}

func (s shape) bounds() AABB {
	if s.isBox {
		return s.box.Bounds()
	}
	return NewAABBFromCenter(s.center, rl.Vector3{X: 2 * s.radius, Y: 2 * s.radius, Z: 2 * s.radius})
}

func (s shape) overlapsSphere(center rl.Vector3, radius float32) bool {
	if s.isBox {
		return s.box.IntersectsSphere(center, radius)
	}
	return rl.Vector3Distance(center, s.center) <= radius+s.radius
}

// contact tests the segment a-b inflated by radius against the shape.
func (s shape) contact(a, b rl.Vector3, radius float32) (contact, bool) {
	if s.isBox {
		return segmentVsOBB(a, b, radius, s.box)
	}
	return segmentVsSphere(a, b, radius, s.center, s.radius)
}

func closestOnSegment(a, b, p rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	lenSq := rl.Vector3LengthSqr(ab)
	if lenSq == 0 {
		return a
	}
	t := clampf(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/lenSq, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}

func segmentVsOBB(a, b rl.Vector3, radius float32, o OBB) (contact, bool) {
	// Alternate projections between the two convex sets.
	p := closestOnSegment(a, b, o.Center)
	q := ClosestPointOnOBB(o, p)
	for i := 0; i < 3; i++ {
		p = closestOnSegment(a, b, q)
		q = ClosestPointOnOBB(o, p)
	}

	d := rl.Vector3Subtract(p, q)
	dist := rl.Vector3Length(d)
	if dist < 1e-5 {
		n, inside := o.exitFace(p)
		return contact{
			point:  rl.Vector3Add(p, rl.Vector3Scale(n, inside)),
			normal: n,
			depth:  radius + inside,
		}, true
	}
	if dist >= radius {
		return contact{}, false
	}
	return contact{point: q, normal: rl.Vector3Scale(d, 1/dist), depth: radius - dist}, true
}

func segmentVsSphere(a, b rl.Vector3, radius float32, center rl.Vector3, sr float32) (contact, bool) {
	p := closestOnSegment(a, b, center)
	d := rl.Vector3Subtract(p, center)
	dist := rl.Vector3Length(d)
	if dist >= radius+sr {
		return contact{}, false
	}
	n := worldUp
	if dist > 1e-5 {
		n = rl.Vector3Scale(d, 1/dist)
	}
	return contact{
		point:  rl.Vector3Add(center, rl.Vector3Scale(n, sr)),
		normal: n,
		depth:  radius + sr - dist,
	}, true
}

// capsuleSegment returns the bottom and top hemisphere centres.
func capsuleSegment(center rl.Vector3, c engine.Capsule) (rl.Vector3, rl.Vector3) {
	h := c.SegmentHalf()
	return rl.Vector3{X: center.X, Y: center.Y - h, Z: center.Z},
		rl.Vector3{X: center.X, Y: center.Y + h, Z: center.Z}
}

func capsuleBounds(center rl.Vector3, c engine.Capsule) AABB {
	r := c.Radius + c.SkinWidth
	return NewAABBFromCenter(center, rl.Vector3{X: 2 * r, Y: c.Height + 2*c.SkinWidth, Z: 2 * r})
}

// SweepCapsule moves the capsule in sub-steps no longer than half its radius
// and pushes it out of every collider it touches. Walkable contacts push up,
// others push along the contact normal, and low ledges are stepped onto.
// Each collider is reported at most once per sweep.
func (p *PhysicsWorld) SweepCapsule(self *engine.GameObject, capsule engine.Capsule, from, delta rl.Vector3) (rl.Vector3, []engine.ControllerHit) {
	length := rl.Vector3Length(delta)
	var moveDir rl.Vector3
	if length > 0 {
		moveDir = rl.Vector3Scale(delta, 1/length)
	}

	steps := 1
	if capsule.Radius > 0 {
		steps = int(math32.Ceil(length / (capsule.Radius * 0.5)))
	}
	if steps < 1 {
		steps = 1
	}
	if steps > maxSweepSteps {
		steps = maxSweepSteps
	}
	step := rl.Vector3Scale(delta, 1/float32(steps))

	region := capsuleBounds(from, capsule).
		Union(capsuleBounds(rl.Vector3Add(from, delta), capsule)).
		Expand(capsule.StepOffset + capsule.SkinWidth)
	var shapes []shape
	for _, obj := range p.GetCollidableObjects() {
		if obj == self || !obj.Active {
			continue
		}
		for _, s := range shapesOf(obj) {
			if s.bounds().Intersects(region) {
				shapes = append(shapes, s)
			}
		}
	}

	var hits []engine.ControllerHit
	seen := make(map[*engine.GameObject]bool)
	report := func(obj *engine.GameObject, c contact) {
		if seen[obj] {
			return
		}
		seen[obj] = true
		hits = append(hits, engine.ControllerHit{
			GameObject:    obj,
			Point:         c.point,
			Normal:        c.normal,
			MoveDirection: moveDir,
			MoveLength:    length,
		})
	}

	pos := from
	for i := 0; i < steps; i++ {
		pos = rl.Vector3Add(pos, step)
		pos = resolveCapsule(pos, step, capsule, shapes, report)
	}
	return rl.Vector3Subtract(pos, from), hits
}

func resolveCapsule(pos, step rl.Vector3, capsule engine.Capsule, shapes []shape, report func(*engine.GameObject, contact)) rl.Vector3 {
	radius := capsule.Radius + capsule.SkinWidth
	for iter := 0; iter < resolveIters; iter++ {
		pushed := false
		for _, s := range shapes {
			a, b := capsuleSegment(pos, capsule)
			c, ok := s.contact(a, b, radius)
			if !ok {
				continue
			}
			report(s.obj, c)
			pos = rl.Vector3Add(pos, pushOut(pos, step, capsule, s, c))
			pushed = true
		}
		if !pushed {
			break
		}
	}
	return pos
}

func pushOut(pos, step rl.Vector3, capsule engine.Capsule, s shape, c contact) rl.Vector3 {
	angle := rl.Vector3Angle(c.normal, worldUp) * rl.Rad2deg
	if c.normal.Y > 0.1 && angle <= capsule.SlopeLimit {
		return rl.Vector3{Y: c.depth / c.normal.Y}
	}

	horizontal := step.X != 0 || step.Z != 0
	feetY := pos.Y - capsule.Height*0.5
	rise := c.point.Y - feetY
	if horizontal && capsule.StepOffset > 0 && rise > 0 && rise <= capsule.StepOffset {
		lift := rl.Vector3{Y: rise + capsule.SkinWidth + stepClearance}
		a, b := capsuleSegment(rl.Vector3Add(pos, lift), capsule)
		if _, blocked := s.contact(a, b, capsule.Radius+capsule.SkinWidth); !blocked {
			return lift
		}
	}

	return rl.Vector3Scale(c.normal, c.depth)
}
