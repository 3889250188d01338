package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

func climbingBehavior() stateBehavior {
	return stateBehavior{
		move: func(c *Controller, in InputState, dt float32) {
			c.climbAbility.Steer(c, in, dt)
		},
		jump: func(c *Controller) {
			c.climbAbility.Release(c)
			c.jumpAbility.Jump(c)
		},
		toggleGrab: func(c *Controller) {
			c.climbAbility.Release(c)
		},
		// Gravity keeps accumulating but is not applied while hanging.
		physics: func(c *Controller, dt float32) {
			c.AddVelocity(PhysicsChannel, rl.Vector3{Y: c.cfg.Gravity * dt})
		},
		nextStateCheck: func(c *Controller) {
			if c.GrabbedObject() == nil {
				c.climbAbility.Release(c)
			}
		},
	}
}
