package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

func walkingBehavior() stateBehavior {
	return stateBehavior{
		move: func(c *Controller, in InputState, _ float32) {
			c.moveAbility.Apply(c, in)
		},
		jump: func(c *Controller) {
			c.jumpAbility.Jump(c)
		},
		toggleGrab: func(c *Controller) {
			c.climbAbility.Grab(c)
		},
		physics: func(c *Controller, dt float32) {
			c.AddVelocity(PhysicsChannel, rl.Vector3{Y: c.cfg.Gravity * dt})
			c.capsule.Move(rl.Vector3Scale(c.vel.Combined(), dt))
		},
		// Falling is not a separate mode yet; walking covers airborne.
		nextStateCheck: func(*Controller) {},
	}
}
