package sim

import (
	"errors"
	"fmt"
	"os"

	"locomotion/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScript = errors.New("sim: invalid script")

// Script is a timeline of held inputs.
type Script struct {
	Name     string    `yaml:"name"`
	Segments []Segment `yaml:"segments"`
}

// Segment holds its inputs for Duration seconds. Jump and Grab are sampled
// as held buttons, so holding them across segments does not repeat them.
// Yaw, when set, turns the actor to face that many degrees about +Y when the
// segment starts.
type Segment struct {
	Duration float32    `yaml:"duration"`
	Move     [2]float32 `yaml:"move,omitempty"`
	Run      bool       `yaml:"run,omitempty"`
	Jump     bool       `yaml:"jump,omitempty"`
	Grab     bool       `yaml:"grab,omitempty"`
	Yaw      *float32   `yaml:"yaw,omitempty"`
	Label    string     `yaml:"label,omitempty"`
}

func (s Segment) input() locomotion.InputState {
	return locomotion.InputState{
		Move:              rl.Vector2{X: s.Move[0], Y: s.Move[1]},
		JumpPressed:       s.Jump,
		RunHeld:           s.Run,
		GrabTogglePressed: s.Grab,
	}
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if len(s.Segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidScript)
	}
	for i, seg := range s.Segments {
		if seg.Duration <= 0 {
			return nil, fmt.Errorf("%w: segment %d: duration must be positive", ErrInvalidScript, i)
		}
	}
	return &s, nil
}

// Duration is the total length of the timeline in seconds.
func (s *Script) Duration() float32 {
	var d float32
	for _, seg := range s.Segments {
		d += seg.Duration
	}
	return d
}

// ScriptInput plays a Script as a locomotion.InputSource.
type ScriptInput struct {
	script  *Script
	edges   locomotion.EdgeDetector
	elapsed float32
	index   int
	end     float32 // end time of the current segment
}

func NewScriptInput(s *Script) *ScriptInput {
	in := &ScriptInput{script: s}
	if len(s.Segments) > 0 {
		in.end = s.Segments[0].Duration
	}
	return in
}

// Poll returns the current segment's inputs with jump and grab turned into
// edges. A finished script polls as idle.
func (in *ScriptInput) Poll() locomotion.InputState {
	seg, ok := in.Current()
	if !ok {
		return in.edges.Apply(locomotion.InputState{})
	}
	return in.edges.Apply(seg.input())
}

// Advance moves the timeline forward by dt and reports whether a new
// segment started.
func (in *ScriptInput) Advance(dt float32) bool {
	in.elapsed += dt
	started := false
	for in.index < len(in.script.Segments) && in.elapsed >= in.end {
		in.index++
		if in.index < len(in.script.Segments) {
			in.end += in.script.Segments[in.index].Duration
			started = true
		}
	}
	return started
}

func (in *ScriptInput) Current() (Segment, bool) {
	if in.index >= len(in.script.Segments) {
		return Segment{}, false
	}
	return in.script.Segments[in.index], true
}

func (in *ScriptInput) Index() int { return in.index }

func (in *ScriptInput) Elapsed() float32 { return in.elapsed }

func (in *ScriptInput) Done() bool { return in.index >= len(in.script.Segments) }
