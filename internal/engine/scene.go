package engine

import "github.com/elliotchance/orderedmap/v2"

// Scene owns a set of root and child objects keyed by UID. Iteration follows
// insertion order so updates are deterministic.
type Scene struct {
	Name    string
	World   WorldAccess
	objects *orderedmap.OrderedMap[uint64, *GameObject]
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:    name,
		objects: orderedmap.NewOrderedMap[uint64, *GameObject](),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.objects == nil {
		s.objects = orderedmap.NewOrderedMap[uint64, *GameObject]()
	}
	g.Scene = s
	s.objects.Set(g.UID, g)
}

// RemoveGameObject removes g and its children from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if s.objects == nil {
		return
	}
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	if s.objects.Delete(g.UID) {
		g.Scene = nil
	}
}

// FindByUID is O(1).
func (s *Scene) FindByUID(uid uint64) *GameObject {
	if s.objects == nil {
		return nil
	}
	g, _ := s.objects.Get(uid)
	return g
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.Objects() {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.Objects() {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Objects returns a snapshot of the scene's objects in insertion order.
func (s *Scene) Objects() []*GameObject {
	if s.objects == nil {
		return nil
	}
	out := make([]*GameObject, 0, s.objects.Len())
	for el := s.objects.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

func (s *Scene) Len() int {
	if s.objects == nil {
		return 0
	}
	return s.objects.Len()
}

func (s *Scene) Start() {
	for _, g := range s.Objects() {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.Objects() {
		g.Update(deltaTime)
	}
}
