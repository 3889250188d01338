package physics

import (
	"locomotion/internal/components"
	"locomotion/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest hit among colliders on layers in mask.
// Colliders that contain the ray origin are ignored.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)
	var closestHit engine.RaycastResult
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range p.GetCollidableObjects() {
		if !obj.Active || !mask.Contains(obj.Layer) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if hitInfo, ok := raycastOBB(origin, direction, boxOBB(box), closestHit.Distance); ok {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(origin, direction, sphere.GetCenter(), sphere.WorldRadius(), closestHit.Distance); ok {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

// raycastOBB runs the slab test in box space. direction must be normalized.
func raycastOBB(origin, direction rl.Vector3, o OBB, maxDistance float32) (engine.RaycastResult, bool) {
	lo := o.toLocal(origin)
	ld := rl.Vector3{
		X: rl.Vector3DotProduct(direction, o.Axes[0]),
		Y: rl.Vector3DotProduct(direction, o.Axes[1]),
		Z: rl.Vector3DotProduct(direction, o.Axes[2]),
	}
	orig := [3]float32{lo.X, lo.Y, lo.Z}
	dir := [3]float32{ld.X, ld.Y, ld.Z}
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	enterAxis := -1
	var enterSign float32

	for i := 0; i < 3; i++ {
		if absf(dir[i]) < 1e-8 {
			if orig[i] < -half[i] || orig[i] > half[i] {
				return engine.RaycastResult{}, false
			}
			continue
		}
		t1 := (-half[i] - orig[i]) / dir[i]
		t2 := (half[i] - orig[i]) / dir[i]
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis = i
			enterSign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	// Origin inside the box, or box behind the ray.
	if tmin < 0 || enterAxis < 0 || tmin > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin))
	normal := rl.Vector3Scale(o.Axes[enterAxis], enterSign)
	return engine.RaycastResult{Point: point, Normal: normal, Distance: tmin}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	oc := rl.Vector3Subtract(origin, center)
	if rl.Vector3LengthSqr(oc) < radius*radius {
		return engine.RaycastResult{}, false
	}
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	t := -b - math32.Sqrt(discriminant)
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func boxOBB(box *components.BoxCollider) OBB {
	g := box.GetGameObject()
	return NewOBBFromBox(box.GetCenter(), box.Size, g.WorldRotation(), g.WorldScale())
}
