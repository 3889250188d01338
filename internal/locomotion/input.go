package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// InputState is one step of player intent. Move is in actor-local axes:
// X right, Y forward. Jump and grab are edges, run is a level.
type InputState struct {
	Move              rl.Vector2
	JumpPressed       bool
	RunHeld           bool
	GrabTogglePressed bool
}

type InputSource interface {
	Poll() InputState
}

// InputFunc adapts a function to InputSource.
type InputFunc func() InputState

func (f InputFunc) Poll() InputState { return f() }

// normalized returns the input with Move scaled to unit length.
// A zero axis stays zero.
func (in InputState) normalized() InputState {
	if rl.Vector2LengthSqr(in.Move) > 0 {
		in.Move = rl.Vector2Normalize(in.Move)
	}
	return in
}

// EdgeDetector turns held buttons into single-step presses.
type EdgeDetector struct {
	jump, grab bool
}

// Apply converts level-sampled jump and grab in raw into edges.
func (e *EdgeDetector) Apply(raw InputState) InputState {
	jumpHeld, grabHeld := raw.JumpPressed, raw.GrabTogglePressed
	raw.JumpPressed = jumpHeld && !e.jump
	raw.GrabTogglePressed = grabHeld && !e.grab
	e.jump, e.grab = jumpHeld, grabHeld
	return raw
}
