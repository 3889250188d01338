package components

import (
	"locomotion/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("moving_platform", func(props map[string]any) (engine.Component, error) {
		p := NewMovingPlatform()
		p.Speed = engine.PropFloat(props, "speed", p.Speed)
		p.Height = engine.PropFloat(props, "height", p.Height)
		p.Axis = rl.Vector3{
			X: engine.PropFloat(props, "axis_x", p.Axis.X),
			Y: engine.PropFloat(props, "axis_y", p.Axis.Y),
			Z: engine.PropFloat(props, "axis_z", p.Axis.Z),
		}
		p.Spin = engine.PropFloat(props, "spin", 0)
		return p, nil
	})
}

// MovingPlatform oscillates its object along Axis:
// pos = start + Axis * (sin(t*Speed) + 1) * Height.
// Spin rotates it about Y in degrees per second.
type MovingPlatform struct {
	engine.BaseComponent
	Speed  float32
	Height float32
	Axis   rl.Vector3
	Spin   float32

	start   rl.Vector3
	elapsed float32
}

func NewMovingPlatform() *MovingPlatform {
	return &MovingPlatform{
		Speed:  1,
		Height: 1,
		Axis:   rl.Vector3{Y: 1},
	}
}

func (p *MovingPlatform) Start() {
	p.start = p.GetGameObject().Transform.Position
}

func (p *MovingPlatform) Update(deltaTime float32) {
	g := p.GetGameObject()
	p.elapsed += deltaTime
	offset := (math32.Sin(p.elapsed*p.Speed) + 1) * p.Height
	g.Transform.Position = rl.Vector3Add(p.start, rl.Vector3Scale(p.Axis, offset))
	if p.Spin != 0 {
		g.Transform.Rotation.Y += p.Spin * deltaTime
	}
}

// Elapsed returns the platform's running time.
func (p *MovingPlatform) Elapsed() float32 {
	return p.elapsed
}
