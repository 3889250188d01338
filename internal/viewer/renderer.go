package viewer

import (
	"fmt"

	"locomotion/internal/components"
	"locomotion/internal/engine"
	"locomotion/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	ShowHUD  bool
	ShowRays bool
	culled   int
}

func NewRenderer() *Renderer {
	return &Renderer{ShowHUD: true, ShowRays: true}
}

// DrawScene draws every visible object with a MeshRenderer. Must run inside
// rl.BeginMode3D.
func (r *Renderer) DrawScene(frustum Frustum, objects []*engine.GameObject) {
	r.culled = 0
	for _, g := range objects {
		m := engine.GetComponent[*components.MeshRenderer](g)
		if m == nil {
			continue
		}
		center, radius := boundingSphere(g)
		if !frustum.ContainsSphere(center, radius) {
			r.culled++
			continue
		}
		m.Draw()
	}
	rl.DrawGrid(40, 1)
}

func (r *Renderer) DrawRays(rays []locomotion.DebugRay) {
	if !r.ShowRays {
		return
	}
	for _, ray := range rays {
		rl.DrawLine3D(ray.Origin, ray.End(), ray.Color)
	}
}

// DrawHUD writes the controller readout in screen space.
func (r *Renderer) DrawHUD(c *locomotion.Controller, reloads int) {
	if !r.ShowHUD {
		return
	}
	pos := c.Position()
	flags := c.Surface()
	lines := []string{
		fmt.Sprintf("FPS %d  culled %d  reloads %d", rl.GetFPS(), r.culled, reloads),
		fmt.Sprintf("state %s  grounded %t  stable %t", c.State(), c.IsGrounded(), c.IsOnStableGround()),
		fmt.Sprintf("pos (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("slope %.1f  hit %.1f  mild %t  steep %t  wall %t",
			flags.SlopeAngle, flags.HitAngle, flags.OnMildSlope, flags.OnSteepSlope, flags.OnWall),
	}
	for _, ch := range []locomotion.Channel{locomotion.PhysicsChannel, locomotion.MoveChannel, locomotion.BounceChannel, locomotion.SlideChannel} {
		v := c.Velocity(ch)
		lines = append(lines, fmt.Sprintf("%-8s (%.2f, %.2f, %.2f)", ch, v.X, v.Y, v.Z))
	}
	if g := c.GrabbedObject(); g != nil {
		lines = append(lines, "grabbing "+g.Name)
	}
	if p := c.Platform(); p != nil {
		lines = append(lines, "riding "+p.Name)
	}
	lines = append(lines, "WASD move  Shift run  Space jump  E grab  RMB look  F1 HUD  F2 rays  R reset")

	rl.DrawRectangle(8, 8, 520, int32(len(lines))*20+12, rl.Fade(rl.Black, 0.5))
	for i, line := range lines {
		rl.DrawText(line, 16, 16+int32(i)*20, 16, rl.RayWhite)
	}
}

// boundingSphere encloses every shape a MeshRenderer would draw for g.
func boundingSphere(g *engine.GameObject) (rl.Vector3, float32) {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		return box.GetCenter(), rl.Vector3Length(box.GetWorldSize()) * 0.5
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		return sphere.GetCenter(), sphere.WorldRadius()
	}
	if cc := engine.GetComponent[*components.CharacterController](g); cc != nil {
		return g.WorldPosition(), cc.Height*0.5 + cc.Radius
	}
	return g.WorldPosition(), 1
}
