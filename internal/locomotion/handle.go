package locomotion

import "locomotion/internal/engine"

// handle is a weak reference that stops resolving once the object leaves
// its scene. Objects outside any scene resolve by pointer.
type handle struct {
	ref   engine.GameObjectRef
	scene *engine.Scene
	obj   *engine.GameObject
}

func (h *handle) set(g *engine.GameObject) {
	h.ref.Set(g)
	h.obj = g
	h.scene = nil
	if g != nil {
		h.scene = g.Scene
	}
}

func (h *handle) clear() { h.set(nil) }

func (h *handle) get() *engine.GameObject {
	if !h.ref.IsValid() {
		return nil
	}
	if h.scene != nil {
		return h.ref.Get(h.scene)
	}
	return h.obj
}

func (h *handle) is(g *engine.GameObject) bool { return h.ref.Is(g) }
