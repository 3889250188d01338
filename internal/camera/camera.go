package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera orbits a target from behind. Yaw is degrees about +Y with 0
// looking down -Z; Pitch is degrees above the horizon.
type FollowCamera struct {
	Target    rl.Vector3
	Yaw       float32
	Pitch     float32
	Distance  float32
	Height    float32 // look-at offset above Target
	LookSpeed float32
	ZoomSpeed float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *FollowCamera {
	return &FollowCamera{
		Target:      target,
		Pitch:       20,
		Distance:    6,
		Height:      1,
		LookSpeed:   0.2,
		ZoomSpeed:   1,
		MinDistance: 2,
		MaxDistance: 20,
	}
}

// Update applies one frame of mouse look and wheel zoom, then re-centres on target.
func (c *FollowCamera) Update(target rl.Vector3, mouseDelta rl.Vector2, wheel float32) {
	c.Target = target
	c.Yaw -= mouseDelta.X * c.LookSpeed
	c.Pitch += mouseDelta.Y * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 80 {
		c.Pitch = 80
	}
	if c.Pitch < -30 {
		c.Pitch = -30
	}

	c.Distance -= wheel * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Forward is the horizontal viewing direction.
func (c *FollowCamera) Forward() rl.Vector3 {
	yawRad := c.Yaw * rl.Deg2rad
	return rl.Vector3{X: -math32.Sin(yawRad), Z: -math32.Cos(yawRad)}
}

func (c *FollowCamera) LookAt() rl.Vector3 {
	return rl.Vector3{X: c.Target.X, Y: c.Target.Y + c.Height, Z: c.Target.Z}
}

// Eye sits Distance away from LookAt, behind and above it.
func (c *FollowCamera) Eye() rl.Vector3 {
	pitchRad := c.Pitch * rl.Deg2rad
	back := rl.Vector3Scale(c.Forward(), -c.Distance*math32.Cos(pitchRad))
	back.Y = c.Distance * math32.Sin(pitchRad)
	return rl.Vector3Add(c.LookAt(), back)
}

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Eye(),
		Target:     c.LookAt(),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
