package locomotion

import (
	"errors"
	"testing"

	"locomotion/internal/components"
	"locomotion/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const dt = float32(0.1)

func TestNewControllerMissingDependencies(t *testing.T) {
	actor := engine.NewGameObject("Player")
	capsule := &fakeCapsule{actor: actor}
	world := &planeWorld{}
	input := InputFunc(func() InputState { return InputState{} })

	tests := []struct {
		name string
		deps Dependencies
	}{
		{"actor", Dependencies{Capsule: capsule, World: world, Input: input}},
		{"capsule", Dependencies{Actor: actor, World: world, Input: input}},
		{"world", Dependencies{Actor: actor, Capsule: capsule, Input: input}},
		{"input", Dependencies{Actor: actor, Capsule: capsule, World: world}},
	}
	for _, tt := range tests {
		if _, err := NewController(DefaultConfig(), tt.deps); !errors.Is(err, ErrMissingDependency) {
			t.Errorf("missing %s: expected ErrMissingDependency, got %v", tt.name, err)
		}
	}

	cfg := DefaultConfig()
	cfg.RayFanVertices = 0
	_, err := NewController(cfg, Dependencies{Actor: actor, Capsule: capsule, World: world, Input: input})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewControllerInitialState(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1})
	if r.ctrl.State() != Walking {
		t.Errorf("Expected Walking, got %v", r.ctrl.State())
	}
	if r.ctrl.SlopeNormal() != engine.AxisUp {
		t.Errorf("Expected up slope normal, got %v", r.ctrl.SlopeNormal())
	}
	if len(r.capsule.listeners) != 1 {
		t.Errorf("Expected controller to listen for hits, got %d listeners", len(r.capsule.listeners))
	}
	if r.capsule.stepOffset != 0.3 || r.capsule.slopeLimit != 45 {
		t.Errorf("Expected capsule limits 45/0.3, got %v/%v", r.capsule.slopeLimit, r.capsule.stepOffset)
	}
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1})
	r.ctrl.Update(0)
	r.ctrl.Update(-1)
	if len(r.capsule.moves) != 0 || r.world.casts != 0 {
		t.Error("Expected no work for non-positive dt")
	}
}

func TestGroundedClampDoesNotAccumulate(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1.08})
	r.surface("Ground", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})

	r.ctrl.SetVelocity(PhysicsChannel, rl.Vector3{Y: -5})
	want := DefaultConfig().GroundedVelocity + DefaultConfig().Gravity*dt
	for i := 0; i < 3; i++ {
		r.actor.Transform.Position = rl.Vector3{Y: 1.08}
		r.ctrl.Update(dt)
		if !r.ctrl.IsGrounded() {
			t.Fatalf("step %d: expected grounded", i)
		}
		if got := r.ctrl.Velocity(PhysicsChannel).Y; !near(got, want, 1e-5) {
			t.Errorf("step %d: expected physics y %v, got %v", i, want, got)
		}
	}
}

func TestGravityAccumulatesInAir(t *testing.T) {
	r := newRig(rl.Vector3{Y: 10})
	r.ctrl.Update(dt)
	r.ctrl.Update(dt)
	if r.ctrl.IsGrounded() {
		t.Error("Expected airborne")
	}
	want := 2 * DefaultConfig().Gravity * dt
	if got := r.ctrl.Velocity(PhysicsChannel).Y; !near(got, want, 1e-5) {
		t.Errorf("Expected physics y %v, got %v", want, got)
	}
	if len(r.capsule.moves) != 2 {
		t.Errorf("Expected one sweep per step, got %d", len(r.capsule.moves))
	}
}

func TestRunSpeedFollowsHeldInput(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1.08})
	r.surface("Ground", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})
	*r.input = InputState{Move: rl.Vector2{Y: 1}, RunHeld: true}

	for i := 0; i < 2; i++ {
		r.ctrl.Update(dt)
		if r.ctrl.MoveSpeed() != 10 {
			t.Errorf("step %d: expected run speed 10, got %v", i, r.ctrl.MoveSpeed())
		}
		if got := r.ctrl.Velocity(MoveChannel); !nearVec(got, rl.Vector3{Z: -10}, 1e-5) {
			t.Errorf("step %d: expected move {0 0 -10}, got %v", i, got)
		}
	}

	r.input.RunHeld = false
	r.ctrl.Update(dt)
	if r.ctrl.MoveSpeed() != 5 {
		t.Errorf("Expected walk speed 5, got %v", r.ctrl.MoveSpeed())
	}
}

func TestMoveFollowsActorFacing(t *testing.T) {
	r := newRig(rl.Vector3{Y: 10})
	r.actor.Transform.SetForward(rl.Vector3{X: 1})
	*r.input = InputState{Move: rl.Vector2{Y: 1}}

	r.ctrl.Update(dt)
	if got := r.ctrl.Velocity(MoveChannel); !nearVec(got, rl.Vector3{X: 5}, 1e-4) {
		t.Errorf("Expected move {5 0 0}, got %v", got)
	}
}

func TestJumpFromGround(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1.08})
	r.surface("Ground", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})
	r.input.JumpPressed = true

	r.ctrl.Update(dt)
	want := DefaultConfig().JumpForce + DefaultConfig().Gravity*dt
	if got := r.ctrl.Velocity(PhysicsChannel).Y; !near(got, want, 1e-5) {
		t.Errorf("Expected physics y %v, got %v", want, got)
	}
}

func TestJumpDeniedInAir(t *testing.T) {
	r := newRig(rl.Vector3{Y: 10})
	r.input.JumpPressed = true

	r.ctrl.Update(dt)
	want := DefaultConfig().Gravity * dt
	if got := r.ctrl.Velocity(PhysicsChannel).Y; !near(got, want, 1e-5) {
		t.Errorf("Expected no jump, physics y %v, got %v", want, got)
	}
}

func TestJumpKeepsHorizontalPhysics(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1.08})
	r.surface("Ground", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})
	r.ctrl.SetVelocity(PhysicsChannel, rl.Vector3{X: 2, Z: -1})
	r.input.JumpPressed = true

	r.ctrl.Update(dt)
	got := r.ctrl.Velocity(PhysicsChannel)
	if got.X != 2 || got.Z != -1 {
		t.Errorf("Expected horizontal physics kept, got %v", got)
	}
}

// climbRig stands the actor on the ground facing a grabbable wall at z = -0.7.
func climbRig() (*rig, *engine.GameObject) {
	r := newRig(rl.Vector3{Y: 1})
	r.surface("Ground", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})
	wall := r.surface("Wall", engine.LayerGrabbable, rl.Vector3{Z: -0.7}, rl.Vector3{Z: 1})
	return r, wall
}

func TestGrabEntersClimbing(t *testing.T) {
	r, wall := climbRig()
	var changes []StateChange
	r.ctrl.StateChanged.AddListener(func(c StateChange) { changes = append(changes, c) })

	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)

	if r.ctrl.State() != Climbing || !r.ctrl.IsGrabbing() {
		t.Fatalf("Expected Climbing, got %v", r.ctrl.State())
	}
	if r.ctrl.GrabbedObject() != wall {
		t.Errorf("Expected Wall grabbed, got %v", r.ctrl.GrabbedObject())
	}
	if r.actor.Parent == nil || r.actor.Parent != r.ctrl.Anchor().Connection() {
		t.Error("Expected actor parented to the anchor connection")
	}
	if len(changes) != 1 || changes[0] != (StateChange{From: Walking, To: Climbing}) {
		t.Errorf("Expected one Walking->Climbing change, got %v", changes)
	}

	// Steering pulls the actor out to the wall distance.
	if len(r.capsule.moves) != 1 {
		t.Fatalf("Expected one steering move, got %d", len(r.capsule.moves))
	}
	want := rl.Vector3{Z: (0.8 - 0.7) * dt}
	if got := r.capsule.moves[0]; !nearVec(got, want, 1e-4) {
		t.Errorf("Expected steering move %v, got %v", want, got)
	}
}

func TestGrabFailsWithoutSurface(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1})
	r.surface("Ground", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})
	changed := false
	r.ctrl.StateChanged.AddListener(func(StateChange) { changed = true })

	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)

	if r.ctrl.State() != Walking || r.ctrl.IsGrabbing() || changed {
		t.Error("Expected to stay Walking")
	}
	if r.actor.Parent != nil {
		t.Error("Expected no anchor")
	}
}

func TestGrabToggleReleases(t *testing.T) {
	r, _ := climbRig()
	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)
	r.ctrl.Update(dt)

	if r.ctrl.State() != Walking || r.ctrl.IsGrabbing() {
		t.Fatalf("Expected release back to Walking, got %v", r.ctrl.State())
	}
	if r.ctrl.GrabbedObject() != nil || r.actor.Parent != nil {
		t.Error("Expected grab and anchor cleared")
	}
}

func TestGrabReleaseKeepsPosition(t *testing.T) {
	cfg := DefaultConfig()
	r := newRig(rl.Vector3{Y: 1})
	r.surface("Ground", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})
	r.surface("Wall", engine.LayerGrabbable, rl.Vector3{Z: -cfg.WallDistance}, rl.Vector3{Z: 1})
	start := r.ctrl.Position()

	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)
	if r.ctrl.State() != Climbing {
		t.Fatalf("Expected Climbing, got %v", r.ctrl.State())
	}
	if got := r.ctrl.Position(); !nearVec(got, start, 1e-4) {
		t.Errorf("Expected grab at wall distance to keep %v, got %v", start, got)
	}

	r.ctrl.Update(dt)
	if r.ctrl.State() != Walking || r.actor.Parent != nil {
		t.Fatalf("Expected release back to Walking, got %v", r.ctrl.State())
	}
	// The release step still applies one walking sweep; nothing else may move the actor.
	last := r.capsule.moves[len(r.capsule.moves)-1]
	if got := rl.Vector3Subtract(r.ctrl.Position(), last); !nearVec(got, start, 1e-4) {
		t.Errorf("Expected release to keep %v, got %v", start, got)
	}
	if last.X != 0 || last.Z != 0 {
		t.Errorf("Expected no horizontal motion with zero input, got %v", last)
	}
}

func TestClimbSteering(t *testing.T) {
	r, _ := climbRig()
	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)
	*r.input = InputState{Move: rl.Vector2{X: 1}}

	before := r.ctrl.Position()
	r.ctrl.Update(dt)
	if r.ctrl.State() != Climbing {
		t.Fatalf("Expected to keep climbing, got %v", r.ctrl.State())
	}
	moved := rl.Vector3Subtract(r.ctrl.Position(), before)
	if !near(moved.X, DefaultConfig().ClimbSpeedHorizontal*dt, 1e-4) {
		t.Errorf("Expected to move right by %v, got %v", DefaultConfig().ClimbSpeedHorizontal*dt, moved)
	}

	*r.input = InputState{Move: rl.Vector2{Y: 1}}
	before = r.ctrl.Position()
	r.ctrl.Update(dt)
	moved = rl.Vector3Subtract(r.ctrl.Position(), before)
	if !near(moved.Y, DefaultConfig().ClimbSpeedVertical*dt, 1e-4) {
		t.Errorf("Expected to climb by %v, got %v", DefaultConfig().ClimbSpeedVertical*dt, moved)
	}
}

func TestClimbReleasesWhenSurfaceGone(t *testing.T) {
	r, wall := climbRig()
	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)
	r.input.GrabTogglePressed = false

	wall.Active = false
	r.ctrl.Update(dt)
	if r.ctrl.State() != Walking {
		t.Errorf("Expected release when nothing is in reach, got %v", r.ctrl.State())
	}
}

func TestClimbReleasesWhenGrabbedObjectRemoved(t *testing.T) {
	r, wall := climbRig()
	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)
	r.input.GrabTogglePressed = false

	r.scene.RemoveGameObject(wall)
	r.ctrl.Update(dt)
	if r.ctrl.State() != Walking || r.ctrl.GrabbedObject() != nil {
		t.Errorf("Expected release after the wall left the scene, got %v", r.ctrl.State())
	}
}

func TestClimbJumpReleasesAndJumps(t *testing.T) {
	r, _ := climbRig()
	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)

	*r.input = InputState{JumpPressed: true}
	r.ctrl.Update(dt)
	if r.ctrl.State() != Walking {
		t.Errorf("Expected Walking after climb jump, got %v", r.ctrl.State())
	}
	want := DefaultConfig().JumpForce + DefaultConfig().Gravity*dt
	if got := r.ctrl.Velocity(PhysicsChannel).Y; !near(got, want, 1e-5) {
		t.Errorf("Expected physics y %v, got %v", want, got)
	}
}

func TestReleaseLevelsFacing(t *testing.T) {
	r, _ := climbRig()
	r.input.GrabTogglePressed = true
	r.ctrl.Update(dt)
	r.actor.Transform.SetForward(rl.Vector3{Y: 1, Z: -1})

	r.ctrl.Update(dt)
	if f := r.actor.Transform.Forward(); !near(f.Y, 0, 1e-5) || !near(f.Z, -1, 1e-5) {
		t.Errorf("Expected level forward {0 0 -1}, got %v", f)
	}
}

func TestPlatformCarriedBeforePhysics(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1.08})
	lift := r.surface("Lift", engine.LayerGround, rl.Vector3{}, rl.Vector3{Y: 1})

	r.ctrl.OnControllerHit(engine.ControllerHit{
		GameObject:    lift,
		Point:         rl.Vector3{},
		Normal:        rl.Vector3{Y: 1},
		MoveDirection: rl.Vector3{Y: -1},
	})
	if r.ctrl.Platform() != lift {
		t.Fatal("Expected the lift to be latched")
	}

	lift.Transform.Position = rl.Vector3{Y: 0.05}
	r.ctrl.Update(dt)

	if len(r.capsule.moves) != 2 {
		t.Fatalf("Expected carry and physics moves, got %d", len(r.capsule.moves))
	}
	if got := r.capsule.moves[0]; !nearVec(got, rl.Vector3{Y: 0.05}, 1e-5) {
		t.Errorf("Expected carry {0 0.05 0}, got %v", got)
	}
}

func TestPlatformClearedWhenNotUnderfoot(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1.08})
	lift := engine.NewGameObject("Lift")
	r.ctrl.OnControllerHit(engine.ControllerHit{
		GameObject:    lift,
		Normal:        rl.Vector3{Y: 1},
		MoveDirection: rl.Vector3{Y: -1},
	})
	r.ctrl.Update(dt)
	if r.ctrl.Platform() != nil {
		t.Error("Expected platform cleared when the feet ray misses it")
	}
}

func TestSideContactClearsPlatform(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1.08})
	lift := engine.NewGameObject("Lift")
	r.ctrl.OnControllerHit(engine.ControllerHit{GameObject: lift, Normal: rl.Vector3{Y: 1}, MoveDirection: rl.Vector3{Y: -1}})
	r.ctrl.OnControllerHit(engine.ControllerHit{GameObject: lift, Normal: rl.Vector3{Y: 1}, MoveDirection: rl.Vector3{X: 1}})
	if r.ctrl.Platform() != nil {
		t.Error("Expected sideways contact to clear the platform")
	}
}

func TestContactPushesRigidbody(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1})
	crate := engine.NewGameObject("Crate")
	rb := components.NewRigidbody()
	rb.Mass = 2
	rb.IsSleeping = true
	crate.AddComponent(rb)

	r.ctrl.OnControllerHit(engine.ControllerHit{
		GameObject:    crate,
		Point:         rl.Vector3{X: 0.6, Y: 1},
		Normal:        rl.Vector3{X: -1},
		MoveDirection: rl.Vector3{X: 1},
	})
	if !nearVec(rb.Velocity, rl.Vector3{X: 0.5}, 1e-6) {
		t.Errorf("Expected velocity {0.5 0 0}, got %v", rb.Velocity)
	}
	if rb.IsSleeping {
		t.Error("Expected pushed body to wake")
	}

	rb.Velocity = rl.Vector3{}
	r.ctrl.OnControllerHit(engine.ControllerHit{GameObject: crate, MoveDirection: rl.Vector3{Y: -1}})
	if rb.Velocity != (rl.Vector3{}) {
		t.Errorf("Expected no push when landing on the body, got %v", rb.Velocity)
	}
}

func TestLedgeBounceAccumulates(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1})
	ledge := engine.NewGameObject("Ledge")
	hit := engine.ControllerHit{
		GameObject:    ledge,
		Point:         rl.Vector3{X: 0.4, Y: -0.1},
		Normal:        rl.Vector3{Y: 1},
		MoveDirection: rl.Vector3{Y: -1},
	}

	r.ctrl.OnControllerHit(hit)
	away := rl.Vector3Scale(rl.Vector3Normalize(rl.Vector3{X: -0.4, Y: 0.1}), DefaultConfig().BounceSpeed)
	if got := r.ctrl.Velocity(BounceChannel); !nearVec(got, away, 1e-5) {
		t.Errorf("Expected bounce %v, got %v", away, got)
	}
	r.ctrl.OnControllerHit(hit)
	if got := r.ctrl.Velocity(BounceChannel); !nearVec(got, rl.Vector3Scale(away, 2), 1e-5) {
		t.Errorf("Expected bounce to accumulate, got %v", got)
	}

	// A contact level with the body is not a ledge.
	hit.Point.Y = 1
	r.ctrl.OnControllerHit(hit)
	if got := r.ctrl.Velocity(BounceChannel); got != (rl.Vector3{}) {
		t.Errorf("Expected bounce cleared, got %v", got)
	}
}

func TestLedgeBounceSkippedWhenWalkingOntoLedge(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1})
	r.ctrl.in = InputState{Move: rl.Vector2{X: 1}}
	r.ctrl.OnControllerHit(engine.ControllerHit{
		GameObject: engine.NewGameObject("Ledge"),
		Point:      rl.Vector3{X: 0.4, Y: -0.1},
		Normal:     rl.Vector3{Y: 1},
	})
	if got := r.ctrl.Velocity(BounceChannel); got != (rl.Vector3{}) {
		t.Errorf("Expected no bounce while moving towards the contact, got %v", got)
	}
}

// steepRig places a 60 degree slope below and in front of the actor, too far
// for the feet ray, and feeds a contact with it on every move.
func steepRig() *rig {
	r := newRig(rl.Vector3{Y: 1})
	n := rl.Vector3{Y: 0.5, Z: 0.8660254}
	slope := r.surface("Slope", engine.LayerGround, rl.Vector3{Z: -0.5}, n)
	point := rl.Vector3Add(rl.Vector3{Z: -0.5}, rl.Vector3Scale(rl.Vector3{Y: 0.8660254, Z: -0.5}, -0.2))
	r.capsule.hits = []engine.ControllerHit{{
		GameObject:    slope,
		Point:         point,
		Normal:        n,
		MoveDirection: rl.Vector3{Y: -1},
	}}
	return r
}

func TestSteepSlopeSlide(t *testing.T) {
	r := steepRig()
	r.ctrl.Update(dt)

	if !r.ctrl.IsOnSteepSlope() || !r.ctrl.HasContactWithSteepSlope() {
		t.Fatalf("Expected steep slope flags, got %+v", r.ctrl.Surface())
	}
	if !near(r.ctrl.Surface().SlopeAngle, 60, 1e-3) {
		t.Errorf("Expected slope angle 60, got %v", r.ctrl.Surface().SlopeAngle)
	}
	downhill := rl.Vector3{Y: -0.8660254, Z: 0.5}
	want := rl.Vector3Scale(downhill, DefaultConfig().SlideSpeed*0.1*dt)
	if got := r.ctrl.Velocity(SlideChannel); !nearVec(got, want, 1e-4) {
		t.Errorf("Expected slide %v, got %v", want, got)
	}

	r.ctrl.Update(dt)
	if r.capsule.stepOffset != DefaultConfig().MinStepOffset {
		t.Errorf("Expected min step offset on steep contact, got %v", r.capsule.stepOffset)
	}
	if r.capsule.slopeLimit != DefaultConfig().MaxWalkableAngle {
		t.Errorf("Expected slope limit %v on steep ground, got %v", DefaultConfig().MaxWalkableAngle, r.capsule.slopeLimit)
	}
	if r.ctrl.IsOnStableGround() {
		t.Error("steep ground is never stable")
	}
}

func TestWallContactFlags(t *testing.T) {
	r := newRig(rl.Vector3{Y: 1})
	wall := r.surface("Wall", engine.LayerDefault, rl.Vector3{X: -0.6}, rl.Vector3{X: 1})
	r.capsule.hits = []engine.ControllerHit{{
		GameObject:    wall,
		Point:         rl.Vector3{X: -0.6, Y: 1},
		Normal:        rl.Vector3{X: 1},
		MoveDirection: rl.Vector3{X: -1},
	}}

	r.ctrl.Update(dt)
	if !r.ctrl.IsOnWall() || r.ctrl.IsOnSteepSlope() {
		t.Fatalf("Expected wall flags, got %+v", r.ctrl.Surface())
	}
	if r.ctrl.CollisionPoint() != (rl.Vector3{X: -0.6, Y: 1}) {
		t.Errorf("Expected collision point recorded, got %v", r.ctrl.CollisionPoint())
	}

	r.ctrl.Update(dt)
	if r.capsule.slopeLimit != 90 {
		t.Errorf("Expected slope limit 90 off stable ground, got %v", r.capsule.slopeLimit)
	}
	if r.capsule.stepOffset != DefaultConfig().MaxStepOffset {
		t.Errorf("Expected max step offset without steep contact, got %v", r.capsule.stepOffset)
	}
}

func TestSlideDirection(t *testing.T) {
	n := rl.Vector3{Y: 0.5, Z: 0.8660254}
	if got := slideDirection(n); !nearVec(got, rl.Vector3{Y: -0.8660254, Z: 0.5}, 1e-5) {
		t.Errorf("Expected downhill {0 -0.866 0.5}, got %v", got)
	}
	if got := slideDirection(rl.Vector3{Y: 1}); got != (rl.Vector3{Y: -1}) {
		t.Errorf("Expected straight down on flat ground, got %v", got)
	}
}

func TestNonFiniteVelocityReset(t *testing.T) {
	r := newRig(rl.Vector3{Y: 10})
	r.ctrl.SetVelocity(PhysicsChannel, rl.Vector3{X: math32.Inf(1)})
	r.ctrl.Update(dt)

	for _, m := range r.capsule.moves {
		if !finite(m) {
			t.Fatalf("Expected finite sweep, got %v", m)
		}
	}
	want := rl.Vector3{Y: DefaultConfig().Gravity * dt}
	if got := r.ctrl.Velocity(PhysicsChannel); !nearVec(got, want, 1e-6) {
		t.Errorf("Expected physics reset to %v, got %v", want, got)
	}
}

func TestDebugObserverOnlyWhenEnabled(t *testing.T) {
	actor := engine.NewGameObject("Player")
	w := &planeWorld{}
	wall := engine.NewGameObject("Wall")
	wall.Layer = engine.LayerGrabbable
	wall.Transform.Position = rl.Vector3{Z: -0.7}
	w.add(wall, rl.Vector3{}, rl.Vector3{Z: 1})
	rec := &RayRecorder{}
	in := &InputState{GrabTogglePressed: true}

	for _, debug := range []bool{false, true} {
		rec.Reset()
		actor.SetParentKeepWorld(nil)
		cfg := DefaultConfig()
		cfg.Debug = debug
		ctrl, err := NewController(cfg, Dependencies{
			Actor: actor, Capsule: &fakeCapsule{actor: actor}, World: w, Input: heldInput(in), Observer: rec,
		})
		if err != nil {
			t.Fatal(err)
		}
		ctrl.Update(dt)
		if debug && len(rec.Rays) == 0 {
			t.Error("Expected debug rays with Debug set")
		}
		if !debug && len(rec.Rays) != 0 {
			t.Errorf("Expected no debug rays without Debug, got %d", len(rec.Rays))
		}
	}
}
