package components

import (
	"fmt"

	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("box_collider", func(props map[string]any) (engine.Component, error) {
		size := rl.Vector3{
			X: engine.PropFloat(props, "x", 1),
			Y: engine.PropFloat(props, "y", 1),
			Z: engine.PropFloat(props, "z", 1),
		}
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, fmt.Errorf("size must be positive, got %v", size)
		}
		return NewBoxCollider(size), nil
	})
}

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), engine.RotateEuler(b.Offset, g.WorldRotation()))
}

// GetWorldSize returns the collider size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: abs(b.Size.X * s.X),
		Y: abs(b.Size.Y * s.Y),
		Z: abs(b.Size.Z * s.Z),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
