package locomotion

import (
	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// ClimbAbility grabs surfaces too steep to walk on and steers the actor
// across them.
type ClimbAbility struct {
	SpeedHorizontal float32
	SpeedVertical   float32
	WallDistance    float32

	grabbing bool
	grabbed  handle
	anchor   AnchorLink
}

func (a *ClimbAbility) Grabbing() bool { return a.grabbing }

// Grab searches the grab layers around the actor and, when a climbable
// surface faces it, enters Climbing anchored to that surface's object.
func (a *ClimbAbility) Grab(c *Controller) bool {
	pos := c.Position()
	hits := RaySphere(c.world, pos, c.dirs, c.cfg.GrabRange, c.grabMask, c.obs)
	cand := SelectSurface(hits, pos, c.cfg.MaxWalkableAngle)
	if !cand.Found || cand.Hit.GameObject == nil {
		c.log.WithField("hits", len(hits)).Debug("locomotion: nothing to grab")
		return false
	}
	a.grabbing = true
	a.grabbed.set(cand.Hit.GameObject)
	c.setState(Climbing)
	a.anchor.Attach(c.actor, cand.Hit.GameObject)
	c.log.WithFields(logrus.Fields{
		"object": cand.Hit.GameObject.Name,
		"point":  cand.Hit.Point,
	}).Debug("locomotion: grabbed")
	return true
}

// Release lets go, levels the actor's facing and returns to Walking.
func (a *ClimbAbility) Release(c *Controller) {
	if g := a.grabbed.get(); g != nil {
		c.log.WithField("object", g.Name).Debug("locomotion: released")
	}
	a.grabbing = false
	a.grabbed.clear()
	a.anchor.Detach()

	fwd := c.actor.Transform.Forward()
	fwd.Y = 0
	c.actor.Transform.SetForward(fwd)
	c.setState(Walking)
}

// Steer moves the actor along the grabbed surface, holding it at
// WallDistance from the wall. The grab ends when nothing climbable is in
// reach or the reachable surface no longer rises above the feet.
func (a *ClimbAbility) Steer(c *Controller, in InputState, dt float32) {
	g := a.grabbed.get()
	if g == nil {
		a.Release(c)
		return
	}
	pos := c.Position()
	hits := RaySphere(c.world, pos, c.dirs, c.cfg.GrabRange, engine.MaskOf(g.Layer), c.obs)
	cand := SelectSurface(hits, pos, c.cfg.MaxWalkableAngle)
	if !cand.Found || cand.HighestY <= c.Feet().Y {
		a.Release(c)
		return
	}

	n := cand.Hit.Normal
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(engine.AxisUp, n))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, n))
	if up.Y < 0 {
		up = rl.Vector3Negate(up)
	}
	target := rl.Vector3Add(cand.Hit.Point, rl.Vector3Scale(n, a.WallDistance))
	wallOffset := rl.Vector3DotProduct(rl.Vector3Subtract(target, pos), n)

	if c.obs != nil {
		c.obs.Ray(cand.Hit.Point, n, 0.2, rl.Black)
		c.obs.Ray(pos, up, 2, rl.Green)
		c.obs.Ray(pos, right, 2, rl.Red)
	}

	move := rl.Vector3Scale(right, in.Move.X*a.SpeedHorizontal)
	move = rl.Vector3Add(move, rl.Vector3Scale(up, in.Move.Y*a.SpeedVertical))
	move = rl.Vector3Add(move, rl.Vector3Scale(n, wallOffset))
	c.capsule.Move(rl.Vector3Scale(move, dt))
}
