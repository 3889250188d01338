// Package scenefile loads scene layouts from YAML.
package scenefile

import (
	"errors"
	"fmt"
	"os"

	"locomotion/internal/engine"
	"locomotion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	// Registers the component factories used by scene files.
	_ "locomotion/internal/components"
)

var ErrInvalidScene = errors.New("scenefile: invalid scene")

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name"`
	Spawn   Spawn       `yaml:"spawn"`
	Objects []ObjectDef `yaml:"objects"`
}

// Spawn places the actor. Position is the capsule centre; Yaw is degrees
// about +Y, 0 facing -Z.
type Spawn struct {
	Position Vec3    `yaml:"position"`
	Yaw      float32 `yaml:"yaw"`
}

type ObjectDef struct {
	Name       string         `yaml:"name"`
	Tags       []string       `yaml:"tags,omitempty"`
	Layer      string         `yaml:"layer,omitempty"`
	Position   Vec3           `yaml:"position"`
	Rotation   Vec3           `yaml:"rotation,omitempty"`
	Scale      *Vec3          `yaml:"scale,omitempty"`
	Components []ComponentDef `yaml:"components"`
}

type ComponentDef struct {
	Type  string         `yaml:"type"`
	Props map[string]any `yaml:"props,omitempty"`
}

// Vec3 is written as a three element sequence.
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 { return rl.Vector3{X: v[0], Y: v[1], Z: v[2]} }

// --- Loading ---

func Load(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}

func Parse(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if len(sf.Objects) == 0 {
		return nil, fmt.Errorf("%w: no objects", ErrInvalidScene)
	}
	for i, o := range sf.Objects {
		if o.Name == "" {
			return nil, fmt.Errorf("%w: object %d has no name", ErrInvalidScene, i)
		}
		if o.Layer != "" {
			if _, ok := engine.LayerByName(o.Layer); !ok {
				return nil, fmt.Errorf("%w: %s: unknown layer %q", ErrInvalidScene, o.Name, o.Layer)
			}
		}
	}
	return &sf, nil
}

// Build instantiates every object into a new scene and registers the
// collider-bearing ones with a new physics world.
func (sf *SceneFile) Build(log *logrus.Logger) (*engine.Scene, *physics.PhysicsWorld, error) {
	scene := engine.NewScene(sf.Name)
	for _, def := range sf.Objects {
		g, err := def.build()
		if err != nil {
			return nil, nil, err
		}
		scene.AddGameObject(g)
	}
	world := physics.NewPhysicsWorld(log)
	world.AddScene(scene)
	return scene, world, nil
}

func (def ObjectDef) build() (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Layer != "" {
		g.Layer, _ = engine.LayerByName(def.Layer)
	}
	g.Transform.Position = def.Position.Vector3()
	g.Transform.Rotation = def.Rotation.Vector3()
	if def.Scale != nil {
		g.Transform.Scale = def.Scale.Vector3()
	}

	for _, cd := range def.Components {
		c, err := engine.CreateComponent(cd.Type, cd.Props)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidScene, def.Name, err)
		}
		g.AddComponent(c)
	}
	return g, nil
}
