package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	ref := GameObjectRef{UID: obj.UID}

	found := ref.Get(scene)
	if found != obj {
		t.Errorf("Get() failed: expected %v, got %v", obj, found)
	}
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")
	ref := GameObjectRef{UID: 0}

	if found := ref.Get(scene); found != nil {
		t.Error("Get() with UID=0 should return nil")
	}

	ref2 := GameObjectRef{UID: 1 << 62}
	if found := ref2.Get(scene); found != nil {
		t.Error("Get() with non-existent UID should return nil")
	}

	ref3 := GameObjectRef{UID: 123}
	if found := ref3.Get(nil); found != nil {
		t.Error("Get() with nil scene should return nil")
	}
}

func TestGameObjectRefIsValid(t *testing.T) {
	validRef := GameObjectRef{UID: 123}
	if !validRef.IsValid() {
		t.Error("GameObjectRef with UID > 0 should be valid")
	}

	invalidRef := GameObjectRef{UID: 0}
	if invalidRef.IsValid() {
		t.Error("GameObjectRef with UID = 0 should be invalid")
	}
}

func TestGameObjectRefSetAndIs(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")

	var ref GameObjectRef
	ref.Set(a)
	if !ref.Is(a) {
		t.Error("ref should point at A")
	}
	if ref.Is(b) {
		t.Error("ref should not point at B")
	}
	if ref.Is(nil) {
		t.Error("Is(nil) should be false")
	}

	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the ref")
	}

	ref.Set(b)
	ref.Clear()
	if ref.UID != 0 {
		t.Errorf("Expected UID 0 after Clear, got %d", ref.UID)
	}
}

func TestGameObjectRefDanglesAfterRemoval(t *testing.T) {
	scene := NewScene("Test")
	platform := NewGameObject("Platform")
	scene.AddGameObject(platform)

	ref := GameObjectRef{}
	ref.Set(platform)

	scene.RemoveGameObject(platform)

	if ref.Get(scene) != nil {
		t.Error("ref to a removed object should resolve to nil")
	}
	if !ref.IsValid() {
		t.Error("ref should still report a UID after removal")
	}
}
