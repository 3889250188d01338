package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      int
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetParentKeepWorld reparents g (nil detaches) without moving it in world space.
func (g *GameObject) SetParentKeepWorld(parent *GameObject) {
	world := g.WorldPosition()
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	if parent == nil {
		g.Transform.Position = world
		return
	}
	parent.AddChild(g)
	g.Transform.Position = parent.InverseTransformPoint(world)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return g.Parent.TransformPoint(g.Transform.Position)
}

// WorldRotation sums Euler angles up the hierarchy. Exact while parents
// rotate about a single axis, which is all the scenes here use.
func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// TransformPoint maps a point from this object's local space to world space.
func (g *GameObject) TransformPoint(local rl.Vector3) rl.Vector3 {
	scale := g.WorldScale()
	scaled := rl.Vector3{X: local.X * scale.X, Y: local.Y * scale.Y, Z: local.Z * scale.Z}
	return rl.Vector3Add(g.WorldPosition(), RotateEuler(scaled, g.WorldRotation()))
}

// InverseTransformPoint maps a world-space point into this object's local space.
func (g *GameObject) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	rel := InverseRotateEuler(rl.Vector3Subtract(world, g.WorldPosition()), g.WorldRotation())
	scale := g.WorldScale()
	return rl.Vector3{X: safeDiv(rel.X, scale.X), Y: safeDiv(rel.Y, scale.Y), Z: safeDiv(rel.Z, scale.Z)}
}

// TransformDirection rotates a local direction into world space.
func (g *GameObject) TransformDirection(local rl.Vector3) rl.Vector3 {
	return RotateEuler(local, g.WorldRotation())
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
