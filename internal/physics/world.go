package physics

import (
	"io"

	"locomotion/internal/components"
	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (moving platforms)
	Statics    []*engine.GameObject // no rigidbody (walls, floor)

	log *logrus.Logger
}

func NewPhysicsWorld(log *logrus.Logger) *PhysicsWorld {
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	return &PhysicsWorld{
		Gravity:    rl.Vector3{X: 0, Y: -9.81, Z: 0},
		Objects:    make([]*engine.GameObject, 0),
		Kinematics: make([]*engine.GameObject, 0),
		Statics:    make([]*engine.GameObject, 0),
		log:        log,
	}
}

// AddObject files g by its rigidbody. Objects without a collider are ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if len(shapesOf(g)) == 0 {
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](g)
	kind := "static"
	if rb == nil {
		p.Statics = append(p.Statics, g)
	} else if rb.IsKinematic {
		p.Kinematics = append(p.Kinematics, g)
		kind = "kinematic"
	} else {
		p.Objects = append(p.Objects, g)
		kind = "dynamic"
	}
	p.log.WithFields(logrus.Fields{"object": g.Name, "kind": kind, "layer": g.Layer}).Debug("physics: added collider")
}

// AddScene adds every collider-bearing object of scene and installs the
// world as the scene's WorldAccess.
func (p *PhysicsWorld) AddScene(scene *engine.Scene) {
	for _, g := range scene.Objects() {
		p.AddObject(g)
	}
	scene.World = p
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Objects = removeObject(p.Objects, g)
	p.Kinematics = removeObject(p.Kinematics, g)
	p.Statics = removeObject(p.Statics, g)
}

func removeObject(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// GetCollidableObjects returns statics, then kinematics, then dynamics.
func (p *PhysicsWorld) GetCollidableObjects() []*engine.GameObject {
	all := make([]*engine.GameObject, 0, len(p.Objects)+len(p.Kinematics)+len(p.Statics))
	all = append(all, p.Statics...)
	all = append(all, p.Kinematics...)
	all = append(all, p.Objects...)
	return all
}

// CheckSphere reports whether any collider on a layer in mask overlaps the sphere.
func (p *PhysicsWorld) CheckSphere(center rl.Vector3, radius float32, mask engine.LayerMask) bool {
	for _, obj := range p.GetCollidableObjects() {
		if !obj.Active || !mask.Contains(obj.Layer) {
			continue
		}
		for _, s := range shapesOf(obj) {
			if s.overlapsSphere(center, radius) {
				return true
			}
		}
	}
	return false
}

// Update integrates dynamic rigidbodies and resolves them against static and
// kinematic colliders. Kinematic objects are moved by their own components.
func (p *PhysicsWorld) Update(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}

		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)

		for _, other := range p.Statics {
			p.resolveAgainst(obj, other, rb)
		}
		for _, other := range p.Kinematics {
			p.resolveAgainst(obj, other, rb)
		}

		rb.TrySleep(deltaTime)
	}
}

// resolveAgainst pushes a dynamic body fully out of an immovable one and
// reflects the velocity along the contact normal.
func (p *PhysicsWorld) resolveAgainst(obj, other *engine.GameObject, rb *components.Rigidbody) {
	var pushOut rl.Vector3
	for _, mine := range shapesOf(obj) {
		for _, theirs := range shapesOf(other) {
			pushOut = rl.Vector3Add(pushOut, separate(mine, theirs))
		}
	}

	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	normal := rl.Vector3Scale(pushOut, 1/pushLen)
	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal < 0 {
		reflect := rl.Vector3Scale(normal, -(1+rb.Bounciness)*velAlongNormal)
		rb.Velocity = rl.Vector3Add(rb.Velocity, reflect)

		// Friction only on ground-like contacts.
		if normal.Y > 0.5 {
			rb.Velocity.X *= 1 - rb.Friction
			rb.Velocity.Z *= 1 - rb.Friction
		}
	}
}

// separate returns the translation that moves a out of b.
func separate(a, b shape) rl.Vector3 {
	switch {
	case a.isBox && b.isBox:
		return a.box.ResolveOBB(b.box)
	case !a.isBox && b.isBox:
		c, ok := segmentVsOBB(a.center, a.center, a.radius, b.box)
		if !ok {
			return rl.Vector3{}
		}
		return rl.Vector3Scale(c.normal, c.depth)
	case a.isBox && !b.isBox:
		c, ok := segmentVsOBB(b.center, b.center, b.radius, a.box)
		if !ok {
			return rl.Vector3{}
		}
		return rl.Vector3Scale(c.normal, -c.depth)
	default:
		c, ok := segmentVsSphere(a.center, a.center, a.radius, b.center, b.radius)
		if !ok {
			return rl.Vector3{}
		}
		return rl.Vector3Scale(c.normal, c.depth)
	}
}
