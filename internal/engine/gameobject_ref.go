package engine

// GameObjectRef is a weak reference to a GameObject by UID. It does not keep
// the target alive: once the object leaves its scene, Get returns nil.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// Get resolves the reference through scene.
// Returns nil if the reference is empty or the object is gone.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference is set. It does not check that the
// object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Is reports whether the reference points at g.
func (r GameObjectRef) Is(g *GameObject) bool {
	return g != nil && r.UID == g.UID
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
