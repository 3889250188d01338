package locomotion

import (
	"fmt"
	"os"

	"locomotion/internal/engine"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the controller. Zero values are not
// meaningful; start from DefaultConfig.
type Config struct {
	// Surface classification, degrees.
	MaxWalkableAngle float32 `yaml:"max_walkable_angle"`
	WallAngle        float32 `yaml:"wall_angle"`

	WalkSpeed            float32 `yaml:"walk_speed"`
	RunSpeed             float32 `yaml:"run_speed"`
	JumpForce            float32 `yaml:"jump_force"`
	ClimbSpeedHorizontal float32 `yaml:"climb_speed_horizontal"`
	ClimbSpeedVertical   float32 `yaml:"climb_speed_vertical"`
	BounceSpeed          float32 `yaml:"bounce_speed"`
	SlideSpeed           float32 `yaml:"slide_speed"`
	PushForce            float32 `yaml:"push_force"`

	Gravity          float32 `yaml:"gravity"`
	GroundedVelocity float32 `yaml:"grounded_velocity"`

	GroundDetectionDistance float32 `yaml:"ground_detection_distance"`
	MinStepOffset           float32 `yaml:"min_step_offset"`
	MaxStepOffset           float32 `yaml:"max_step_offset"`

	GrabRange      float32 `yaml:"grab_range"`
	RayFanVertices int     `yaml:"ray_fan_vertices"`
	WallDistance   float32 `yaml:"wall_distance"`

	// Actor geometry relative to the capsule centre.
	FeetOffset       float32 `yaml:"feet_offset"`
	LowerProbeOffset float32 `yaml:"lower_probe_offset"`

	GroundLayers []string `yaml:"ground_layers"`
	GrabLayers   []string `yaml:"grab_layers"`

	Debug bool `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		MaxWalkableAngle:        45,
		WallAngle:               89,
		WalkSpeed:               5,
		RunSpeed:                10,
		JumpForce:               4,
		ClimbSpeedHorizontal:    5,
		ClimbSpeedVertical:      2,
		BounceSpeed:             0.5,
		SlideSpeed:              2,
		PushForce:               1,
		Gravity:                 -9.81,
		GroundedVelocity:        -0.1,
		GroundDetectionDistance: 0.2,
		MinStepOffset:           0.1,
		MaxStepOffset:           0.3,
		GrabRange:               1,
		RayFanVertices:          200,
		WallDistance:            0.8,
		FeetOffset:              1,
		LowerProbeOffset:        0.5,
		GroundLayers:            []string{"ground", "grabbable", "default"},
		GrabLayers:              []string{"grabbable"},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("locomotion: load config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for _, f := range c.floatFields() {
		if math32.IsNaN(f.value) || math32.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	switch {
	case c.RayFanVertices < 2:
		return fmt.Errorf("%w: ray_fan_vertices must be at least 2, got %d", ErrInvalidConfig, c.RayFanVertices)
	case c.MaxWalkableAngle <= 0 || c.MaxWalkableAngle >= 90:
		return fmt.Errorf("%w: max_walkable_angle must be in (0, 90), got %v", ErrInvalidConfig, c.MaxWalkableAngle)
	case c.WallAngle <= c.MaxWalkableAngle || c.WallAngle > 180:
		return fmt.Errorf("%w: wall_angle must be in (max_walkable_angle, 180], got %v", ErrInvalidConfig, c.WallAngle)
	case c.GrabRange <= 0:
		return fmt.Errorf("%w: grab_range must be positive, got %v", ErrInvalidConfig, c.GrabRange)
	case c.GroundDetectionDistance <= 0:
		return fmt.Errorf("%w: ground_detection_distance must be positive, got %v", ErrInvalidConfig, c.GroundDetectionDistance)
	case c.MinStepOffset < 0 || c.MaxStepOffset < c.MinStepOffset:
		return fmt.Errorf("%w: step offsets must satisfy 0 <= min <= max, got %v..%v", ErrInvalidConfig, c.MinStepOffset, c.MaxStepOffset)
	case c.WalkSpeed < 0 || c.RunSpeed < 0 || c.JumpForce < 0 || c.BounceSpeed < 0 || c.SlideSpeed < 0 || c.PushForce < 0:
		return fmt.Errorf("%w: speeds and forces must not be negative", ErrInvalidConfig)
	case c.ClimbSpeedHorizontal < 0 || c.ClimbSpeedVertical < 0:
		return fmt.Errorf("%w: climb speeds must not be negative", ErrInvalidConfig)
	case c.WallDistance <= 0 || c.FeetOffset <= 0:
		return fmt.Errorf("%w: wall_distance and feet_offset must be positive", ErrInvalidConfig)
	case c.WallDistance >= c.GrabRange:
		return fmt.Errorf("%w: wall_distance %v must be below grab_range %v", ErrInvalidConfig, c.WallDistance, c.GrabRange)
	}
	if _, err := layerMask(c.GroundLayers); err != nil {
		return fmt.Errorf("%w: ground_layers: %v", ErrInvalidConfig, err)
	}
	if _, err := layerMask(c.GrabLayers); err != nil {
		return fmt.Errorf("%w: grab_layers: %v", ErrInvalidConfig, err)
	}
	return nil
}

type namedFloat struct {
	name  string
	value float32
}

func (c Config) floatFields() []namedFloat {
	return []namedFloat{
		{"max_walkable_angle", c.MaxWalkableAngle},
		{"wall_angle", c.WallAngle},
		{"walk_speed", c.WalkSpeed},
		{"run_speed", c.RunSpeed},
		{"jump_force", c.JumpForce},
		{"climb_speed_horizontal", c.ClimbSpeedHorizontal},
		{"climb_speed_vertical", c.ClimbSpeedVertical},
		{"bounce_speed", c.BounceSpeed},
		{"slide_speed", c.SlideSpeed},
		{"push_force", c.PushForce},
		{"gravity", c.Gravity},
		{"grounded_velocity", c.GroundedVelocity},
		{"ground_detection_distance", c.GroundDetectionDistance},
		{"min_step_offset", c.MinStepOffset},
		{"max_step_offset", c.MaxStepOffset},
		{"grab_range", c.GrabRange},
		{"wall_distance", c.WallDistance},
		{"feet_offset", c.FeetOffset},
		{"lower_probe_offset", c.LowerProbeOffset},
	}
}

// GroundMask is the layer filter for ground probes.
func (c Config) GroundMask() engine.LayerMask {
	m, _ := layerMask(c.GroundLayers)
	return m
}

// GrabMask is the layer filter for grab searches.
func (c Config) GrabMask() engine.LayerMask {
	m, _ := layerMask(c.GrabLayers)
	return m
}

func layerMask(names []string) (engine.LayerMask, error) {
	if len(names) == 0 {
		return 0, fmt.Errorf("no layers")
	}
	var layers []int
	for _, n := range names {
		l, ok := engine.LayerByName(n)
		if !ok {
			return 0, fmt.Errorf("unknown layer %q", n)
		}
		layers = append(layers, l)
	}
	return engine.MaskOf(layers...), nil
}
