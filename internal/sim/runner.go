package sim

import (
	"context"
	"fmt"
	"io"
	"strings"

	"locomotion/internal/locomotion"
	"locomotion/internal/scenefile"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

const DefaultDT = float32(1.0 / 60)

type Runner struct {
	Config locomotion.Config
	Scene  *scenefile.SceneFile
	Script *Script
	DT     float32 // DefaultDT when zero
	Log    *logrus.Logger
}

type Transition struct {
	Time     float32
	From, To locomotion.StateKind
}

// Report summarises one run.
type Report struct {
	Scene       string
	Script      string
	Steps       int
	Duration    float32
	Final       rl.Vector3
	State       locomotion.StateKind
	Grounded    bool
	MaxHeight   float32
	Transitions []Transition
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scene %q, script %q: %d steps over %.2fs\n", r.Scene, r.Script, r.Steps, r.Duration)
	fmt.Fprintf(&b, "final position (%.3f, %.3f, %.3f), state %s, grounded %t, max height %.3f\n",
		r.Final.X, r.Final.Y, r.Final.Z, r.State, r.Grounded, r.MaxHeight)
	for _, t := range r.Transitions {
		fmt.Fprintf(&b, "  %6.2fs  %s -> %s\n", t.Time, t.From, t.To)
	}
	return b.String()
}

// Run builds the scene, spawns the actor and plays the script to the end.
// It stops early with ctx's error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	log := r.Log
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	dt := r.DT
	if dt <= 0 {
		dt = DefaultDT
	}
	if r.Scene == nil || r.Script == nil {
		return Report{}, fmt.Errorf("sim: scene and script are required")
	}

	scene, world, err := r.Scene.Build(log)
	if err != nil {
		return Report{}, err
	}
	input := NewScriptInput(r.Script)
	actor, err := SpawnActor(scene, world, r.Scene.Spawn, r.Config, input, log, nil)
	if err != nil {
		return Report{}, err
	}
	ctrl := actor.Controller

	report := Report{
		Scene:     r.Scene.Name,
		Script:    r.Script.Name,
		MaxHeight: ctrl.Position().Y,
	}
	ctrl.StateChanged.AddListener(func(c locomotion.StateChange) {
		report.Transitions = append(report.Transitions, Transition{Time: input.Elapsed(), From: c.From, To: c.To})
		log.WithFields(logrus.Fields{
			"t":    fmt.Sprintf("%.2f", input.Elapsed()),
			"from": c.From,
			"to":   c.To,
		}).Info("state transition")
	})

	scene.Start()
	r.enterSegment(actor, input, log)

	perSecond := int(math32.Round(1 / dt))
	if perSecond < 1 {
		perSecond = 1
	}
	for !input.Done() {
		if err := ctx.Err(); err != nil {
			return r.finish(report, ctrl, input), fmt.Errorf("sim: %w", err)
		}
		world.Update(dt)
		scene.Update(dt)
		report.Steps++

		pos := ctrl.Position()
		if !finite(pos) {
			return r.finish(report, ctrl, input), fmt.Errorf("sim: actor position became non-finite at step %d", report.Steps)
		}
		report.MaxHeight = math32.Max(report.MaxHeight, pos.Y)

		if report.Steps%perSecond == 0 {
			log.WithFields(logrus.Fields{
				"t":        fmt.Sprintf("%.2f", input.Elapsed()+dt),
				"pos":      fmt.Sprintf("(%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z),
				"state":    ctrl.State(),
				"grounded": ctrl.IsGrounded(),
				"surface":  surfaceName(ctrl.Surface()),
			}).Info("progress")
		}

		if input.Advance(dt) {
			r.enterSegment(actor, input, log)
		}
	}
	return r.finish(report, ctrl, input), nil
}

func (r *Runner) enterSegment(actor *Actor, input *ScriptInput, log *logrus.Logger) {
	seg, ok := input.Current()
	if !ok {
		return
	}
	if seg.Yaw != nil {
		actor.Object.Transform.Rotation = rl.Vector3{Y: *seg.Yaw}
	}
	log.WithFields(logrus.Fields{
		"index": input.Index(),
		"label": seg.Label,
		"t":     fmt.Sprintf("%.2f", input.Elapsed()),
	}).Debug("segment")
}

func (r *Runner) finish(report Report, ctrl *locomotion.Controller, input *ScriptInput) Report {
	report.Duration = input.Elapsed()
	report.Final = ctrl.Position()
	report.State = ctrl.State()
	report.Grounded = ctrl.IsGrounded()
	return report
}

func surfaceName(f locomotion.SurfaceFlags) string {
	switch {
	case f.OnWall:
		return locomotion.Wall.String()
	case f.OnSteepSlope:
		return locomotion.SteepSlope.String()
	case f.OnMildSlope:
		return locomotion.MildSlope.String()
	}
	return locomotion.Flat.String()
}

func finite(v rl.Vector3) bool {
	for _, c := range []float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
