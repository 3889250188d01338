package components

import (
	"fmt"

	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("rigidbody", func(props map[string]any) (engine.Component, error) {
		rb := NewRigidbody()
		rb.Mass = engine.PropFloat(props, "mass", rb.Mass)
		rb.Bounciness = engine.PropFloat(props, "bounciness", rb.Bounciness)
		rb.Friction = engine.PropFloat(props, "friction", rb.Friction)
		rb.UseGravity = engine.PropBool(props, "use_gravity", rb.UseGravity)
		rb.IsKinematic = engine.PropBool(props, "kinematic", rb.IsKinematic)
		if rb.Mass <= 0 {
			return nil, fmt.Errorf("mass must be positive, got %v", rb.Mass)
		}
		return rb, nil
	})
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Mass        float32
	Bounciness  float32 // 0 = no bounce, 1 = perfect bounce
	Friction    float32 // 0 = ice, 1 = stops immediately
	UseGravity  bool
	IsKinematic bool // moves but doesn't get pushed by physics

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32
	CanSleep   bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		Bounciness: 0.2,
		Friction:   0.1,
		UseGravity: true,
		CanSleep:   true,
	}
}

// SetVelocity replaces the velocity and wakes the body.
func (r *Rigidbody) SetVelocity(v rl.Vector3) {
	r.Velocity = v
	r.Wake()
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		r.Velocity = rl.Vector3Scale(r.Velocity, 0.9)

		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
