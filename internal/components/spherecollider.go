package components

import (
	"fmt"

	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("sphere_collider", func(props map[string]any) (engine.Component, error) {
		r := engine.PropFloat(props, "radius", 0.5)
		if r <= 0 {
			return nil, fmt.Errorf("radius must be positive, got %v", r)
		}
		return NewSphereCollider(r), nil
	})
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// WorldRadius scales the radius by the largest world scale component.
func (s *SphereCollider) WorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := abs(sc.X)
	if abs(sc.Y) > m {
		m = abs(sc.Y)
	}
	if abs(sc.Z) > m {
		m = abs(sc.Z)
	}
	return s.Radius * m
}
