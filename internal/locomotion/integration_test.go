package locomotion

import (
	"testing"

	"locomotion/internal/components"
	"locomotion/internal/engine"
	"locomotion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type physicsRig struct {
	ctrl  *Controller
	actor *engine.GameObject
	world *physics.PhysicsWorld
	scene *engine.Scene
	input *InputState
}

func box(name string, layer int, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Layer = layer
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func newPhysicsRig(t *testing.T, spawn rl.Vector3, objs ...*engine.GameObject) *physicsRig {
	t.Helper()
	scene := engine.NewScene("Test")
	for _, g := range objs {
		scene.AddGameObject(g)
	}
	actor := engine.NewGameObject("Player")
	actor.Layer = engine.LayerPlayer
	actor.Transform.Position = spawn
	cc := components.NewCharacterController()
	actor.AddComponent(cc)
	scene.AddGameObject(actor)

	world := physics.NewPhysicsWorld(nil)
	world.AddScene(scene)

	in := &InputState{}
	ctrl, err := NewController(DefaultConfig(), Dependencies{
		Actor:   actor,
		Capsule: cc,
		World:   world,
		Input:   heldInput(in),
	})
	if err != nil {
		t.Fatal(err)
	}
	return &physicsRig{ctrl: ctrl, actor: actor, world: world, scene: scene, input: in}
}

func (r *physicsRig) run(steps int) {
	for i := 0; i < steps; i++ {
		r.world.Update(1.0 / 60)
		r.scene.Update(1.0 / 60)
		r.ctrl.Update(1.0 / 60)
	}
}

func floor() *engine.GameObject {
	// Top face at y = 0.
	return box("Ground", engine.LayerGround, rl.Vector3{Y: -0.5}, rl.Vector3{X: 40, Y: 1, Z: 40})
}

func TestLandsAndRestsOnGround(t *testing.T) {
	r := newPhysicsRig(t, rl.Vector3{Y: 2}, floor())
	r.run(120)

	if !r.ctrl.IsGrounded() || !r.ctrl.IsOnStableGround() {
		t.Errorf("Expected grounded and stable, got %v %v", r.ctrl.IsGrounded(), r.ctrl.IsOnStableGround())
	}
	if y := r.ctrl.Position().Y; !near(y, 1.08, 0.02) {
		t.Errorf("Expected to rest at 1.08, got %v", y)
	}
	if r.ctrl.State() != Walking {
		t.Errorf("Expected Walking, got %v", r.ctrl.State())
	}
}

func TestWalksForward(t *testing.T) {
	r := newPhysicsRig(t, rl.Vector3{Y: 1.08}, floor())
	r.run(10)
	start := r.ctrl.Position()

	*r.input = InputState{Move: rl.Vector2{Y: 1}}
	r.run(60)

	moved := rl.Vector3Subtract(r.ctrl.Position(), start)
	if !near(moved.Z, -5, 0.3) {
		t.Errorf("Expected about 5 units forward (-Z), got %v", moved)
	}
	if !near(moved.Y, 0, 0.02) {
		t.Errorf("Expected to stay on the ground, got %v", moved)
	}
}

func TestJumpLeavesGround(t *testing.T) {
	r := newPhysicsRig(t, rl.Vector3{Y: 1.08}, floor())
	r.run(10)
	start := r.ctrl.Position().Y

	r.input.JumpPressed = true
	r.run(1)
	r.input.JumpPressed = false
	r.run(15)

	if r.ctrl.Position().Y < start+0.3 {
		t.Errorf("Expected to be airborne, y %v from %v", r.ctrl.Position().Y, start)
	}
	r.run(120)
	if !near(r.ctrl.Position().Y, start, 0.02) {
		t.Errorf("Expected to land back at %v, got %v", start, r.ctrl.Position().Y)
	}
}

func TestRidesRisingPlatform(t *testing.T) {
	lift := box("Lift", engine.LayerGround, rl.Vector3{Y: -0.5}, rl.Vector3{X: 4, Y: 1, Z: 4})
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	lift.AddComponent(rb)
	r := newPhysicsRig(t, rl.Vector3{Y: 1.08}, lift)
	r.run(5)
	start := r.ctrl.Position().Y

	for i := 0; i < 30; i++ {
		lift.Transform.Position.Y += 0.01
		r.run(1)
	}
	if r.ctrl.Platform() != lift {
		t.Errorf("Expected to be latched to the lift, got %v", r.ctrl.Platform())
	}
	if got := r.ctrl.Position().Y - start; !near(got, 0.3, 0.03) {
		t.Errorf("Expected to rise with the lift by 0.3, got %v", got)
	}
}
