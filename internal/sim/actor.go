// Package sim runs the locomotion controller headless against a scene file
// and a scripted input timeline.
package sim

import (
	"fmt"

	"locomotion/internal/components"
	"locomotion/internal/engine"
	"locomotion/internal/locomotion"
	"locomotion/internal/physics"
	"locomotion/internal/scenefile"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// Actor is a spawned player: its object, capsule and controller.
type Actor struct {
	Object     *engine.GameObject
	Capsule    *components.CharacterController
	Controller *locomotion.Controller
}

// SpawnActor adds a player at spawn to scene and attaches a controller
// driven by input. The controller runs as a component of the player, so it
// updates after every object added to the scene before it.
func SpawnActor(scene *engine.Scene, world *physics.PhysicsWorld, spawn scenefile.Spawn, cfg locomotion.Config,
	input locomotion.InputSource, log *logrus.Logger, obs locomotion.Observer) (*Actor, error) {
	g := engine.NewGameObject("Player")
	g.Layer = engine.LayerPlayer
	g.Tags = []string{"player"}
	g.Transform.Position = spawn.Position.Vector3()
	g.Transform.Rotation = rl.Vector3{Y: spawn.Yaw}

	cc := components.NewCharacterController()
	g.AddComponent(cc)
	g.AddComponent(components.NewMeshRenderer(rl.Orange))
	scene.AddGameObject(g)

	ctrl, err := locomotion.NewController(cfg, locomotion.Dependencies{
		Actor:    g,
		Capsule:  cc,
		World:    world,
		Input:    input,
		Log:      log,
		Observer: obs,
	})
	if err != nil {
		scene.RemoveGameObject(g)
		return nil, fmt.Errorf("spawn actor: %w", err)
	}
	g.AddComponent(ctrl)
	return &Actor{Object: g, Capsule: cc, Controller: ctrl}, nil
}
