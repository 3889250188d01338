package locomotion

import (
	"locomotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlatformTracker remembers the body the actor stands on and where the actor
// was relative to it, so platform motion can be replayed onto the actor.
type PlatformTracker struct {
	body   handle
	local  rl.Vector3
	global rl.Vector3
}

// Latch selects body and records actorPos against it. Latching the body
// already selected is a no-op. It reports whether the selection changed.
func (p *PlatformTracker) Latch(body *engine.GameObject, actorPos rl.Vector3) bool {
	if body == nil || p.body.is(body) {
		return false
	}
	p.body.set(body)
	p.Record(actorPos)
	return true
}

func (p *PlatformTracker) Clear() { p.body.clear() }

// Current returns the selected body, or nil once it has left its scene.
func (p *PlatformTracker) Current() *engine.GameObject { return p.body.get() }

// Verify keeps the selection only if underfoot is the same body.
func (p *PlatformTracker) Verify(underfoot *engine.GameObject) {
	if underfoot == nil || !p.body.is(underfoot) {
		p.Clear()
	}
}

// Delta is how far the recorded point has been carried since Record.
func (p *PlatformTracker) Delta() rl.Vector3 {
	body := p.Current()
	if body == nil {
		return rl.Vector3{}
	}
	return rl.Vector3Subtract(body.TransformPoint(p.local), p.global)
}

// Record stores actorPos in world space and in the body's local space.
func (p *PlatformTracker) Record(actorPos rl.Vector3) {
	body := p.Current()
	if body == nil {
		return
	}
	p.global = actorPos
	p.local = body.InverseTransformPoint(actorPos)
}
