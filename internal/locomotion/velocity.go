package locomotion

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Channel names one additive velocity contribution.
type Channel int

const (
	PhysicsChannel Channel = iota // gravity and jumps
	MoveChannel                   // player input
	BounceChannel                 // push away from ledges
	SlideChannel                  // slide down steep slopes
	channelCount
)

func (c Channel) String() string {
	switch c {
	case PhysicsChannel:
		return "physics"
	case MoveChannel:
		return "move"
	case BounceChannel:
		return "bounce"
	case SlideChannel:
		return "slide"
	}
	return "unknown"
}

// Velocity is the set of channels the controller sums each step.
type Velocity struct {
	ch [channelCount]rl.Vector3
}

func (v *Velocity) Get(c Channel) rl.Vector3 { return v.ch[c] }

func (v *Velocity) Set(c Channel, val rl.Vector3) { v.ch[c] = val }

func (v *Velocity) Add(c Channel, val rl.Vector3) { v.ch[c] = rl.Vector3Add(v.ch[c], val) }

func (v *Velocity) Remove(c Channel, val rl.Vector3) { v.ch[c] = rl.Vector3Subtract(v.ch[c], val) }

// Combined is the sum of all channels.
func (v *Velocity) Combined() rl.Vector3 {
	var sum rl.Vector3
	for _, c := range v.ch {
		sum = rl.Vector3Add(sum, c)
	}
	return sum
}

func (v *Velocity) Reset() { v.ch = [channelCount]rl.Vector3{} }

// Finite reports whether every component of every channel is finite.
func (v *Velocity) Finite() bool {
	for _, c := range v.ch {
		if !finite(c) {
			return false
		}
	}
	return true
}

func finite(v rl.Vector3) bool {
	return !math32.IsNaN(v.X) && !math32.IsNaN(v.Y) && !math32.IsNaN(v.Z) &&
		!math32.IsInf(v.X, 0) && !math32.IsInf(v.Y, 0) && !math32.IsInf(v.Z, 0)
}
