package locomotion

import (
	"fmt"
	"io"

	"locomotion/internal/components"
	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// Capsule is the character shape the controller drives. Move must deliver
// contacts to hit listeners synchronously before it returns.
type Capsule interface {
	Move(motion rl.Vector3) rl.Vector3
	SetSlopeLimit(deg float32)
	SetStepOffset(offset float32)
	GetRadius() float32
	GetSkinWidth() float32
	AddHitListener(fn func(engine.ControllerHit))
}

// World is the query surface the controller needs from physics.
type World interface {
	Raycaster
	CheckSphere(center rl.Vector3, radius float32, mask engine.LayerMask) bool
}

type Dependencies struct {
	Actor    *engine.GameObject
	Capsule  Capsule
	World    World
	Input    InputSource
	Log      *logrus.Logger
	Observer Observer // consulted only when Config.Debug is set
}

// lowerProbeMargin is how far beyond the skin the lower-body probe reaches.
const lowerProbeMargin = 0.01

// ledgeHeight is how far below the centre a contact must be to count as a
// ledge or slope under the actor.
const ledgeHeight = 0.5

// normalCastDistance is the reach of the re-cast that measures the exact
// normal of a contacted surface.
const normalCastDistance = 10

// platformCarryThreshold is the smallest platform displacement replayed
// onto the actor.
const platformCarryThreshold = 0.001

// Controller drives one actor. It is not safe for concurrent use.
type Controller struct {
	engine.BaseComponent

	cfg        Config
	actor      *engine.GameObject
	capsule    Capsule
	world      World
	input      InputSource
	log        *logrus.Logger
	obs        Observer
	groundMask engine.LayerMask
	grabMask   engine.LayerMask
	dirs       []rl.Vector3
	table      [stateCount]stateBehavior

	moveAbility  MoveAbility
	jumpAbility  JumpAbility
	climbAbility ClimbAbility

	state          StateKind
	vel            Velocity
	in             InputState
	dt             float32
	grounded       bool
	stable         bool
	flags          SurfaceFlags
	slopeNormal    rl.Vector3
	collisionPoint rl.Vector3
	platform       PlatformTracker

	// StateChanged fires after every transition.
	StateChanged engine.EventWithArg[StateChange]
}

func NewController(cfg Config, deps Dependencies) (*Controller, error) {
	switch {
	case deps.Actor == nil:
		return nil, fmt.Errorf("%w: actor", ErrMissingDependency)
	case deps.Capsule == nil:
		return nil, fmt.Errorf("%w: capsule", ErrMissingDependency)
	case deps.World == nil:
		return nil, fmt.Errorf("%w: world", ErrMissingDependency)
	case deps.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingDependency)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := deps.Log
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	var obs Observer
	if cfg.Debug {
		obs = deps.Observer
	}

	c := &Controller{
		cfg:         cfg,
		actor:       deps.Actor,
		capsule:     deps.Capsule,
		world:       deps.World,
		input:       deps.Input,
		log:         log,
		obs:         obs,
		groundMask:  cfg.GroundMask(),
		grabMask:    cfg.GrabMask(),
		dirs:        FibonacciSphere(cfg.RayFanVertices),
		table:       newBehaviorTable(),
		state:       Walking,
		slopeNormal: engine.AxisUp,
		moveAbility: MoveAbility{WalkSpeed: cfg.WalkSpeed, RunSpeed: cfg.RunSpeed},
		jumpAbility: JumpAbility{Force: cfg.JumpForce},
		climbAbility: ClimbAbility{
			SpeedHorizontal: cfg.ClimbSpeedHorizontal,
			SpeedVertical:   cfg.ClimbSpeedVertical,
			WallDistance:    cfg.WallDistance,
		},
	}
	c.moveAbility.SetRunning(false)
	c.capsule.SetSlopeLimit(cfg.MaxWalkableAngle)
	c.capsule.SetStepOffset(cfg.MaxStepOffset)
	c.capsule.AddHitListener(c.OnControllerHit)
	return c, nil
}

// Update advances the controller by dt seconds. Non-positive dt is ignored.
func (c *Controller) Update(dt float32) {
	if dt <= 0 {
		return
	}
	c.dt = dt
	c.in = c.input.Poll().normalized()

	c.cleanup()

	if c.grounded && c.vel.Get(PhysicsChannel).Y < 0 {
		v := c.vel.Get(PhysicsChannel)
		v.Y = c.cfg.GroundedVelocity
		c.vel.Set(PhysicsChannel, v)
	}

	c.climbAbility.anchor.Follow()
	c.carryPlatform()

	c.handleInput(dt)

	if !c.vel.Finite() {
		c.log.WithFields(logrus.Fields{
			"physics": c.vel.Get(PhysicsChannel),
			"move":    c.vel.Get(MoveChannel),
			"bounce":  c.vel.Get(BounceChannel),
			"slide":   c.vel.Get(SlideChannel),
		}).Warn("locomotion: non-finite velocity, resetting channels")
		c.vel.Reset()
	}
	c.table[c.state].physics(c, dt)
}

// cleanup recomputes the ground flags and the capsule limits that depend
// on them, then lets the active state react.
func (c *Controller) cleanup() {
	feet := c.Feet()
	feetSphere := c.world.CheckSphere(feet, c.cfg.GroundDetectionDistance, c.groundMask)
	lower := c.lowerPartTouchingGround()

	c.grounded = feetSphere || (lower && !c.flags.OnWall) || c.climbAbility.Grabbing()

	c.stable = feetSphere || (lower && c.flags.OnMildSlope)
	if c.flags.OnSteepSlope || c.flags.OnWall {
		c.stable = false
	}

	if c.stable || c.flags.OnSteepSlope {
		c.capsule.SetSlopeLimit(c.cfg.MaxWalkableAngle)
	} else {
		c.capsule.SetSlopeLimit(90)
	}

	if !lower {
		c.vel.Set(BounceChannel, rl.Vector3{})
	}
	if !c.flags.OnSteepSlope {
		c.vel.Set(SlideChannel, rl.Vector3{})
	}

	switch {
	case c.flags.HasContactWithSteepSlope && c.flags.OnWall:
		c.capsule.SetStepOffset(0)
	case c.flags.HasContactWithSteepSlope:
		c.capsule.SetStepOffset(c.cfg.MinStepOffset)
	default:
		c.capsule.SetStepOffset(c.cfg.MaxStepOffset)
	}

	c.table[c.state].nextStateCheck(c)
}

// carryPlatform replays the motion of the platform underfoot onto the actor.
func (c *Controller) carryPlatform() {
	hit, ok := c.feetCast()
	if ok {
		c.platform.Verify(hit.GameObject)
	} else {
		c.platform.Verify(nil)
	}
	if c.platform.Current() == nil {
		return
	}
	if d := c.platform.Delta(); rl.Vector3Length(d) > platformCarryThreshold {
		c.capsule.Move(d)
	}
	c.platform.Record(c.Position())
}

func (c *Controller) handleInput(dt float32) {
	in := c.in
	if in.GrabTogglePressed {
		c.table[c.state].toggleGrab(c)
	}
	c.moveAbility.SetRunning(in.RunHeld)
	if c.jumpAbility.Check(c, in.JumpPressed) {
		c.table[c.state].jump(c)
	}
	c.table[c.state].move(c, in, dt)
}

// OnControllerHit reacts to one capsule contact: pushes rigidbodies,
// latches platforms, reclassifies the surface and feeds the bounce and
// slide channels.
func (c *Controller) OnControllerHit(hit engine.ControllerHit) {
	if rb := engine.GetComponent[*components.Rigidbody](hit.GameObject); rb != nil && !rb.IsKinematic && rb.Mass > 0 {
		if hit.MoveDirection.Y > -0.3 {
			push := rl.Vector3{X: hit.MoveDirection.X, Z: hit.MoveDirection.Z}
			rb.SetVelocity(rl.Vector3Scale(push, c.cfg.PushForce/rb.Mass))
		}
	}

	if hit.MoveDirection.Y < -0.9 && hit.Normal.Y > 0.41 {
		if c.platform.Latch(hit.GameObject, c.Position()) {
			c.log.WithField("platform", hit.GameObject.Name).Debug("locomotion: platform latched")
		}
	} else {
		c.platform.Clear()
	}

	c.collisionPoint = hit.Point

	feet := c.Feet()
	_, feetOnGround := c.feetCast()

	var layer engine.LayerMask = engine.Everything
	if hit.GameObject != nil {
		layer = engine.MaskOf(hit.GameObject.Layer)
	}
	c.slopeNormal = c.raycastNormal(feet, rl.Vector3Subtract(hit.Point, feet), layer)
	slopeAngle := SurfaceAngle(c.slopeNormal, engine.AxisUp)
	hitAngle := SurfaceAngle(hit.Normal, engine.AxisUp)
	c.flags = classifyContact(slopeAngle, hitAngle, c.cfg.MaxWalkableAngle, c.cfg.WallAngle)

	worldMove := c.actor.TransformDirection(localMove(c.in.Move))
	towards := rl.Vector3DotProduct(worldMove, rl.Vector3Subtract(hit.Point, feet)) > 0
	overLedge := !feetOnGround && hit.Point.Y < c.Position().Y-ledgeHeight

	if slopeAngle > c.cfg.MaxWalkableAngle && slopeAngle < 90 {
		if overLedge && !c.flags.OnMildSlope {
			target := rl.Vector3Scale(slideDirection(c.slopeNormal), c.cfg.SlideSpeed)
			c.vel.Set(SlideChannel, rl.Vector3Lerp(c.vel.Get(SlideChannel), target, 0.1*c.dt))
		} else {
			c.vel.Set(SlideChannel, rl.Vector3{})
		}
		return
	}
	if overLedge && (!towards || c.flags.OnSteepSlope) {
		away := rl.Vector3Normalize(rl.Vector3Subtract(feet, hit.Point))
		c.vel.Add(BounceChannel, rl.Vector3Scale(away, c.cfg.BounceSpeed))
	} else {
		c.vel.Set(BounceChannel, rl.Vector3{})
	}
}

// slideDirection is the downhill direction along a surface with the given
// normal. A flat surface yields straight down.
func slideDirection(normal rl.Vector3) rl.Vector3 {
	axis := rl.Vector3CrossProduct(engine.AxisUp, normal)
	if rl.Vector3LengthSqr(axis) == 0 {
		return rl.Vector3{Y: -1}
	}
	angle := rl.Vector3Angle(engine.AxisUp, normal) + rl.Pi/2
	return rl.Vector3RotateByAxisAngle(engine.AxisUp, axis, angle)
}

func (c *Controller) lowerPartTouchingGround() bool {
	center := rl.Vector3Subtract(c.Position(), rl.Vector3{Y: c.cfg.LowerProbeOffset})
	r := c.capsule.GetSkinWidth() + c.capsule.GetRadius() + lowerProbeMargin
	return c.world.CheckSphere(center, r, c.groundMask)
}

// feetCast casts down from the feet for ground-detection distance.
func (c *Controller) feetCast() (engine.RaycastResult, bool) {
	return c.world.Raycast(c.Feet(), rl.Vector3{Y: -1}, c.cfg.GroundDetectionDistance, c.groundMask)
}

// raycastNormal returns the normal of the surface along dir, or up when
// nothing is hit.
func (c *Controller) raycastNormal(origin, dir rl.Vector3, mask engine.LayerMask) rl.Vector3 {
	if rl.Vector3LengthSqr(dir) == 0 {
		return engine.AxisUp
	}
	hit, ok := c.world.Raycast(origin, rl.Vector3Normalize(dir), normalCastDistance, mask)
	if !ok {
		return engine.AxisUp
	}
	return hit.Normal
}

func (c *Controller) setState(k StateKind) {
	if k == c.state {
		return
	}
	from := c.state
	c.state = k
	c.log.WithFields(logrus.Fields{"from": from, "to": k}).Debug("locomotion: state changed")
	c.StateChanged.Invoke(StateChange{From: from, To: k})
}

// Velocity accessors. States and abilities go through these.

func (c *Controller) Velocity(ch Channel) rl.Vector3 { return c.vel.Get(ch) }

func (c *Controller) SetVelocity(ch Channel, v rl.Vector3) { c.vel.Set(ch, v) }

func (c *Controller) AddVelocity(ch Channel, v rl.Vector3) { c.vel.Add(ch, v) }

func (c *Controller) RemoveVelocity(ch Channel, v rl.Vector3) { c.vel.Remove(ch, v) }

func (c *Controller) CombinedVelocity() rl.Vector3 { return c.vel.Combined() }

// Read-only state.

func (c *Controller) State() StateKind { return c.state }

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Actor() *engine.GameObject { return c.actor }

// Position is the actor's capsule centre in world space.
func (c *Controller) Position() rl.Vector3 { return c.actor.WorldPosition() }

// Feet is the bottom of the actor.
func (c *Controller) Feet() rl.Vector3 {
	return rl.Vector3Subtract(c.Position(), rl.Vector3{Y: c.cfg.FeetOffset})
}

func (c *Controller) IsGrounded() bool { return c.grounded }

func (c *Controller) IsOnStableGround() bool { return c.stable }

func (c *Controller) Surface() SurfaceFlags { return c.flags }

func (c *Controller) IsOnMildSlope() bool { return c.flags.OnMildSlope }

func (c *Controller) IsOnSteepSlope() bool { return c.flags.OnSteepSlope }

func (c *Controller) IsOnWall() bool { return c.flags.OnWall }

func (c *Controller) HasContactWithSteepSlope() bool { return c.flags.HasContactWithSteepSlope }

func (c *Controller) SlopeNormal() rl.Vector3 { return c.slopeNormal }

func (c *Controller) CollisionPoint() rl.Vector3 { return c.collisionPoint }

func (c *Controller) IsGrabbing() bool { return c.climbAbility.Grabbing() }

// GrabbedObject is nil when not climbing or once the object left its scene.
func (c *Controller) GrabbedObject() *engine.GameObject { return c.climbAbility.grabbed.get() }

// Platform is the body the actor is being carried by, if any.
func (c *Controller) Platform() *engine.GameObject { return c.platform.Current() }

func (c *Controller) MoveSpeed() float32 { return c.moveAbility.Speed() }

// Input is the normalised input of the current step.
func (c *Controller) Input() InputState { return c.in }

// Anchor exposes the grab link, active only while climbing.
func (c *Controller) Anchor() *AnchorLink { return &c.climbAbility.anchor }
