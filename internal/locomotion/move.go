package locomotion

import (
	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MoveAbility turns the move axis into the move channel.
type MoveAbility struct {
	WalkSpeed float32
	RunSpeed  float32

	speed float32
}

func (m *MoveAbility) SetRunning(running bool) {
	if running {
		m.speed = m.RunSpeed
	} else {
		m.speed = m.WalkSpeed
	}
}

func (m *MoveAbility) Speed() float32 { return m.speed }

// Apply sets the move channel to the input direction at the current speed.
// On mild slopes the direction is tilted onto the slope plane.
func (m *MoveAbility) Apply(c *Controller, in InputState) {
	dir := c.actor.TransformDirection(localMove(in.Move))
	if rl.Vector3LengthSqr(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
	}
	if c.flags.OnMildSlope {
		q := rl.QuaternionFromVector3ToVector3(engine.AxisUp, c.slopeNormal)
		dir = rl.Vector3RotateByQuaternion(dir, q)
	}
	c.SetVelocity(MoveChannel, rl.Vector3Scale(dir, m.speed))
}

// localMove maps a move axis to actor-local space: X right, Y forward.
func localMove(v rl.Vector2) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: 0, Z: -v.Y}
}
