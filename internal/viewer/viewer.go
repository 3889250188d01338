// Package viewer drives the locomotion controller from the keyboard in a
// raylib window.
package viewer

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"locomotion/internal/camera"
	"locomotion/internal/engine"
	"locomotion/internal/locomotion"
	"locomotion/internal/physics"
	"locomotion/internal/scenefile"
	"locomotion/internal/sim"
	"locomotion/internal/watch"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// maxFrameTime caps the simulated time per frame after a stall.
const maxFrameTime = 0.25

type Options struct {
	Config     locomotion.Config
	ConfigPath string // reloaded on change when Watch is set
	ScenePath  string // the built-in playground when empty
	Watch      bool
	Width      int32
	Height     int32
	Log        *logrus.Logger
}

type Viewer struct {
	opts Options
	log  *logrus.Logger
	cfg  locomotion.Config

	sceneFile *scenefile.SceneFile
	scene     *engine.Scene
	world     *physics.PhysicsWorld
	actor     *sim.Actor

	input    *KeyboardInput
	rays     *locomotion.RayRecorder
	cam      *camera.FollowCamera
	renderer *Renderer

	accum   float32
	reloads int
}

func New(opts Options) *Viewer {
	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	if opts.Width == 0 {
		opts.Width = 1280
	}
	if opts.Height == 0 {
		opts.Height = 720
	}
	return &Viewer{
		opts:     opts,
		log:      log,
		cfg:      opts.Config,
		input:    NewKeyboardInput(DefaultBindings()),
		rays:     &locomotion.RayRecorder{},
		renderer: NewRenderer(),
	}
}

// Run opens the window and blocks until it is closed or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	sf, err := v.loadSceneFile()
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(v.opts.Width, v.opts.Height, "Locomotion")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	if err := v.spawn(sf); err != nil {
		return err
	}

	var events <-chan string
	var watchErrs <-chan error
	if v.opts.Watch {
		w, err := watch.NewWatcher(v.watchPaths()...)
		if err != nil {
			return fmt.Errorf("viewer: watch: %w", err)
		}
		defer w.Close()
		events, watchErrs = w.Events, w.Errors
	}

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-events:
			if ok {
				v.reload(path)
			}
		case err, ok := <-watchErrs:
			if ok {
				v.log.WithError(err).Warn("viewer: watch error")
			}
		default:
		}

		v.handleKeys()
		v.update(rl.GetFrameTime())
		v.draw()
	}
	return nil
}

func (v *Viewer) loadSceneFile() (*scenefile.SceneFile, error) {
	if v.opts.ScenePath == "" {
		return sim.DefaultScene()
	}
	return scenefile.Load(v.opts.ScenePath)
}

func (v *Viewer) watchPaths() []string {
	var paths []string
	if v.opts.ScenePath != "" {
		paths = append(paths, v.opts.ScenePath)
	}
	if v.opts.ConfigPath != "" {
		paths = append(paths, v.opts.ConfigPath)
	}
	return paths
}

// spawn replaces the running scene with a fresh build of sf.
func (v *Viewer) spawn(sf *scenefile.SceneFile) error {
	cfg := v.cfg
	cfg.Debug = true

	scene, world, err := sf.Build(v.log)
	if err != nil {
		return err
	}
	actor, err := sim.SpawnActor(scene, world, sf.Spawn, cfg, v.input, v.log, v.rays)
	if err != nil {
		return err
	}
	actor.Controller.StateChanged.AddListener(func(c locomotion.StateChange) {
		v.log.WithFields(logrus.Fields{"from": c.From, "to": c.To}).Info("state transition")
	})
	scene.Start()

	v.sceneFile, v.scene, v.world, v.actor = sf, scene, world, actor
	if v.cam == nil {
		v.cam = camera.New(actor.Controller.Position())
		v.cam.Yaw = sf.Spawn.Yaw
	}
	v.accum = 0
	v.log.WithFields(logrus.Fields{"scene": sf.Name, "objects": scene.Len()}).Info("viewer: scene ready")
	return nil
}

// reload rebuilds after an edit. A broken file keeps the running scene.
func (v *Viewer) reload(path string) {
	log := v.log.WithField("path", path)
	if v.opts.ConfigPath != "" && filepath.Clean(path) == filepath.Clean(v.opts.ConfigPath) {
		cfg, err := locomotion.LoadConfig(path)
		if err != nil {
			log.WithError(err).Warn("viewer: config reload failed")
			return
		}
		v.cfg = cfg
	}
	sf := v.sceneFile
	if v.opts.ScenePath != "" && filepath.Clean(path) == filepath.Clean(v.opts.ScenePath) {
		loaded, err := scenefile.Load(path)
		if err != nil {
			log.WithError(err).Warn("viewer: scene reload failed")
			return
		}
		sf = loaded
	}
	if err := v.spawn(sf); err != nil {
		log.WithError(err).Warn("viewer: respawn failed")
		return
	}
	v.reloads++
	log.Info("viewer: reloaded")
}

func (v *Viewer) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		v.renderer.ShowHUD = !v.renderer.ShowHUD
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		v.renderer.ShowRays = !v.renderer.ShowRays
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := v.spawn(v.sceneFile); err != nil {
			v.log.WithError(err).Warn("viewer: reset failed")
		}
	}
}

// update steps the simulation at a fixed rate and turns the actor to the
// camera heading while it walks.
func (v *Viewer) update(frameTime float32) {
	var look rl.Vector2
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		look = rl.GetMouseDelta()
	}
	ctrl := v.actor.Controller
	v.cam.Update(ctrl.Position(), look, rl.GetMouseWheelMove())

	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}
	v.accum += frameTime
	if v.accum >= sim.DefaultDT {
		v.rays.Reset()
	}
	for v.accum >= sim.DefaultDT {
		if ctrl.State() == locomotion.Walking {
			v.actor.Object.Transform.Rotation = rl.Vector3{Y: v.cam.Yaw}
		}
		v.world.Update(sim.DefaultDT)
		v.scene.Update(sim.DefaultDT)
		v.accum -= sim.DefaultDT
	}
}

func (v *Viewer) draw() {
	cam := v.cam.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)
	rl.BeginMode3D(cam)
	v.renderer.DrawScene(ExtractFrustum(cam, aspect), v.scene.Objects())
	v.renderer.DrawRays(v.rays.Rays)
	rl.EndMode3D()
	v.renderer.DrawHUD(v.actor.Controller, v.reloads)
	rl.EndDrawing()
}
