// Stress test timing controller steps against growing numbers of colliders
package main

import (
	"fmt"
	"math/rand"
	"time"

	"locomotion/internal/components"
	"locomotion/internal/engine"
	"locomotion/internal/locomotion"
	"locomotion/internal/physics"
	"locomotion/internal/scenefile"
	"locomotion/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// circle walks in a slow circle and jumps every second.
type circle struct{ step int }

func (c *circle) Poll() locomotion.InputState {
	c.step++
	return locomotion.InputState{
		Move:        rl.Vector2{X: 0.3, Y: 1},
		JumpPressed: c.step%60 == 0,
	}
}

func main() {
	testCounts := []int{10, 100, 500, 1000, 2000, 5000}
	for _, count := range testCounts {
		testSteps(count)
	}
}

func testSteps(count int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	scene := engine.NewScene("stress")
	ground := engine.NewGameObject("Ground")
	ground.Layer = engine.LayerGround
	ground.Transform.Position = rl.Vector3{Y: -0.5}
	ground.AddComponent(components.NewBoxCollider(rl.Vector3{X: 200, Y: 1, Z: 200}))
	scene.AddGameObject(ground)

	// Spread, size scales with count to keep density reasonable
	spawnSize := float32(40.0) + float32(count)/20.0
	for i := 0; i < count; i++ {
		g := engine.NewGameObject(fmt.Sprintf("Box%d", i))
		g.Layer = engine.LayerGrabbable
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32() * 0.3,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		g.Transform.Rotation.Y = rng.Float32() * 360
		size := 0.5 + rng.Float32()*1.5
		g.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
		scene.AddGameObject(g)
	}

	world := physics.NewPhysicsWorld(nil)
	world.AddScene(scene)

	spawn := scenefile.Spawn{Position: scenefile.Vec3{0, 1.08, 0}}
	actor, err := sim.SpawnActor(scene, world, spawn, locomotion.DefaultConfig(), &circle{}, nil, nil)
	if err != nil {
		fmt.Printf("%5d colliders: ERROR: %v\n", count, err)
		return
	}
	scene.Start()

	// Warm up
	for i := 0; i < 10; i++ {
		scene.Update(sim.DefaultDT)
	}

	const steps = 600
	start := time.Now()
	for i := 0; i < steps; i++ {
		world.Update(sim.DefaultDT)
		scene.Update(sim.DefaultDT)
	}
	perStep := time.Since(start) / steps

	pos := actor.Controller.Position()
	fmt.Printf("%5d colliders: %10v per step | end (%.1f, %.1f, %.1f) %s\n",
		count, perStep.Round(time.Microsecond), pos.X, pos.Y, pos.Z, actor.Controller.State())
}
