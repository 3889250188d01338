package components

import (
	"fmt"

	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("character_controller", func(props map[string]any) (engine.Component, error) {
		c := NewCharacterController()
		c.Height = engine.PropFloat(props, "height", c.Height)
		c.Radius = engine.PropFloat(props, "radius", c.Radius)
		c.SkinWidth = engine.PropFloat(props, "skin_width", c.SkinWidth)
		c.SlopeLimit = engine.PropFloat(props, "slope_limit", c.SlopeLimit)
		c.StepOffset = engine.PropFloat(props, "step_offset", c.StepOffset)
		if c.Radius <= 0 || c.Height < 2*c.Radius {
			return nil, fmt.Errorf("invalid capsule: height %v radius %v", c.Height, c.Radius)
		}
		return c, nil
	})
}

// CharacterController is a capsule moved by explicit sweeps. It has no
// velocity of its own; callers pass the displacement for each step.
type CharacterController struct {
	engine.BaseComponent

	Height     float32
	Radius     float32
	SkinWidth  float32
	SlopeLimit float32 // degrees
	StepOffset float32

	// OnHit fires synchronously inside Move, once per contact.
	OnHit engine.EventWithArg[engine.ControllerHit]

	lastMove rl.Vector3
	hits     int
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     2.0,
		Radius:     0.5,
		SkinWidth:  0.08,
		SlopeLimit: 45.0,
		StepOffset: 0.3,
	}
}

// Capsule returns the current sweep shape.
func (c *CharacterController) Capsule() engine.Capsule {
	return engine.Capsule{
		Height:     c.Height,
		Radius:     c.Radius,
		SkinWidth:  c.SkinWidth,
		SlopeLimit: c.SlopeLimit,
		StepOffset: c.StepOffset,
	}
}

func (c *CharacterController) SetSlopeLimit(deg float32) { c.SlopeLimit = deg }

func (c *CharacterController) SetStepOffset(offset float32) { c.StepOffset = offset }

func (c *CharacterController) GetRadius() float32 { return c.Radius }

func (c *CharacterController) GetSkinWidth() float32 { return c.SkinWidth }

// AddHitListener subscribes fn to OnHit.
func (c *CharacterController) AddHitListener(fn func(engine.ControllerHit)) { c.OnHit.AddListener(fn) }

// Move sweeps the capsule by motion and returns the displacement actually
// applied. Contacts are delivered through OnHit before Move returns.
func (c *CharacterController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	from := g.WorldPosition()
	moved := motion
	var hits []engine.ControllerHit
	if g.Scene != nil && g.Scene.World != nil {
		moved, hits = g.Scene.World.SweepCapsule(g, c.Capsule(), from, motion)
	}

	to := rl.Vector3Add(from, moved)
	if g.Parent != nil {
		g.Transform.Position = g.Parent.InverseTransformPoint(to)
	} else {
		g.Transform.Position = to
	}

	c.lastMove = moved
	c.hits = len(hits)
	for _, hit := range hits {
		c.OnHit.Invoke(hit)
	}
	return moved
}

// LastMove is the displacement applied by the most recent Move.
func (c *CharacterController) LastMove() rl.Vector3 { return c.lastMove }

// LastHitCount is the number of contacts reported by the most recent Move.
func (c *CharacterController) LastHitCount() int { return c.hits }
