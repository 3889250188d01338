package locomotion

import (
	"locomotion/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}

func nearVec(a, b rl.Vector3, eps float32) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

// plane is a one-sided half-space owned by obj. Its surface passes through
// obj's world position plus offset.
type plane struct {
	obj    *engine.GameObject
	offset rl.Vector3
	normal rl.Vector3
}

func (p plane) point() rl.Vector3 {
	return rl.Vector3Add(p.obj.WorldPosition(), p.offset)
}

// planeWorld answers queries against a set of planes.
type planeWorld struct {
	planes []plane
	casts  int
}

func (w *planeWorld) add(obj *engine.GameObject, offset, normal rl.Vector3) {
	w.planes = append(w.planes, plane{obj: obj, offset: offset, normal: rl.Vector3Normalize(normal)})
}

func (w *planeWorld) Raycast(origin, dir rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	w.casts++
	best := engine.RaycastResult{Distance: math32.Inf(1)}
	found := false
	for _, p := range w.planes {
		if !p.obj.Active || !mask.Contains(p.obj.Layer) {
			continue
		}
		denom := rl.Vector3DotProduct(dir, p.normal)
		if denom >= 0 {
			continue
		}
		t := rl.Vector3DotProduct(rl.Vector3Subtract(p.point(), origin), p.normal) / denom
		if t < 0 || t > maxDistance || t >= best.Distance {
			continue
		}
		best = engine.RaycastResult{
			GameObject: p.obj,
			Point:      rl.Vector3Add(origin, rl.Vector3Scale(dir, t)),
			Normal:     p.normal,
			Distance:   t,
		}
		found = true
	}
	return best, found
}

func (w *planeWorld) CheckSphere(center rl.Vector3, radius float32, mask engine.LayerMask) bool {
	for _, p := range w.planes {
		if !p.obj.Active || !mask.Contains(p.obj.Layer) {
			continue
		}
		if rl.Vector3DotProduct(rl.Vector3Subtract(center, p.point()), p.normal) < radius {
			return true
		}
	}
	return false
}

// fakeCapsule moves its actor without collision and replays scripted hits.
type fakeCapsule struct {
	actor      *engine.GameObject
	moves      []rl.Vector3
	slopeLimit float32
	stepOffset float32
	hits       []engine.ControllerHit
	listeners  []func(engine.ControllerHit)
}

func (f *fakeCapsule) Move(motion rl.Vector3) rl.Vector3 {
	f.moves = append(f.moves, motion)
	to := rl.Vector3Add(f.actor.WorldPosition(), motion)
	if f.actor.Parent != nil {
		f.actor.Transform.Position = f.actor.Parent.InverseTransformPoint(to)
	} else {
		f.actor.Transform.Position = to
	}
	for _, h := range f.hits {
		for _, fn := range f.listeners {
			fn(h)
		}
	}
	return motion
}

func (f *fakeCapsule) SetSlopeLimit(deg float32)    { f.slopeLimit = deg }
func (f *fakeCapsule) SetStepOffset(offset float32) { f.stepOffset = offset }
func (f *fakeCapsule) GetRadius() float32           { return 0.5 }
func (f *fakeCapsule) GetSkinWidth() float32        { return 0.08 }

func (f *fakeCapsule) AddHitListener(fn func(engine.ControllerHit)) {
	f.listeners = append(f.listeners, fn)
}

// heldInput returns the same state on every poll.
func heldInput(in *InputState) InputSource {
	return InputFunc(func() InputState { return *in })
}

type rig struct {
	ctrl    *Controller
	actor   *engine.GameObject
	capsule *fakeCapsule
	world   *planeWorld
	input   *InputState
	scene   *engine.Scene
}

// newRig places an actor centred at pos in an empty plane world.
func newRig(pos rl.Vector3) *rig {
	scene := engine.NewScene("Test")
	actor := engine.NewGameObject("Player")
	actor.Layer = engine.LayerPlayer
	actor.Transform.Position = pos
	scene.AddGameObject(actor)

	r := &rig{
		actor:   actor,
		capsule: &fakeCapsule{actor: actor},
		world:   &planeWorld{},
		input:   &InputState{},
		scene:   scene,
	}
	ctrl, err := NewController(DefaultConfig(), Dependencies{
		Actor:   actor,
		Capsule: r.capsule,
		World:   r.world,
		Input:   heldInput(r.input),
	})
	if err != nil {
		panic(err)
	}
	r.ctrl = ctrl
	return r
}

// surface adds a plane-backed object on layer.
func (r *rig) surface(name string, layer int, pos, normal rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Layer = layer
	g.Transform.Position = pos
	r.scene.AddGameObject(g)
	r.world.add(g, rl.Vector3{}, normal)
	return g
}

func cos32(x float32) float32 { return math32.Cos(x) }
func sin32(x float32) float32 { return math32.Sin(x) }
