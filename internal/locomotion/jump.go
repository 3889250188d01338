package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

type JumpAbility struct {
	Force float32
}

// Check probes below the feet, refreshing the slope normal when ground is
// found, and reports whether a requested jump may start.
func (j *JumpAbility) Check(c *Controller, requested bool) bool {
	_, onGround := c.feetCast()
	if onGround {
		c.slopeNormal = c.raycastNormal(c.Feet(), rl.Vector3{Y: -1}, c.groundMask)
	}
	return requested && (c.stable || onGround || c.state == Climbing)
}

// Jump replaces the vertical physics velocity and keeps the horizontal part.
func (j *JumpAbility) Jump(c *Controller) {
	v := c.Velocity(PhysicsChannel)
	v.Y = j.Force
	c.SetVelocity(PhysicsChannel, v)
	c.log.WithField("position", c.Position()).Debug("locomotion: jump")
}
