package viewer

import (
	"locomotion/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bindings maps keys to controller inputs.
type Bindings struct {
	Forward, Back, Left, Right int32
	Run, Jump, Grab            int32
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward: rl.KeyW,
		Back:    rl.KeyS,
		Left:    rl.KeyA,
		Right:   rl.KeyD,
		Run:     rl.KeyLeftShift,
		Jump:    rl.KeySpace,
		Grab:    rl.KeyE,
	}
}

// KeyboardInput is a locomotion.InputSource reading the raylib keyboard.
type KeyboardInput struct {
	Bindings Bindings
	keyDown  func(key int32) bool
	edges    locomotion.EdgeDetector
}

func NewKeyboardInput(b Bindings) *KeyboardInput {
	return &KeyboardInput{Bindings: b, keyDown: rl.IsKeyDown}
}

func (k *KeyboardInput) Poll() locomotion.InputState {
	return k.edges.Apply(k.sample())
}

// sample reads held keys. Jump and grab are levels until Poll edges them.
func (k *KeyboardInput) sample() locomotion.InputState {
	var in locomotion.InputState
	if k.keyDown(k.Bindings.Forward) {
		in.Move.Y++
	}
	if k.keyDown(k.Bindings.Back) {
		in.Move.Y--
	}
	if k.keyDown(k.Bindings.Right) {
		in.Move.X++
	}
	if k.keyDown(k.Bindings.Left) {
		in.Move.X--
	}
	in.RunHeld = k.keyDown(k.Bindings.Run)
	in.JumpPressed = k.keyDown(k.Bindings.Jump)
	in.GrabTogglePressed = k.keyDown(k.Bindings.Grab)
	return in
}
