package engine

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Local axes. Forward is -Z, matching the camera convention of the renderer.
var (
	AxisRight   = rl.Vector3{X: 1}
	AxisUp      = rl.Vector3{Y: 1}
	AxisForward = rl.Vector3{Z: -1}
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees, applied X then Y then Z
	Scale    rl.Vector3
}

// Direction rotates a local-space direction into the parent space of the
// transform. Scale is not applied.
func (t Transform) Direction(local rl.Vector3) rl.Vector3 {
	return RotateEuler(local, t.Rotation)
}

func (t Transform) Forward() rl.Vector3 {
	return t.Direction(AxisForward)
}

func (t Transform) Right() rl.Vector3 {
	return t.Direction(AxisRight)
}

// SetForward points the transform along dir, dropping any roll.
// A zero vector leaves the rotation untouched.
func (t *Transform) SetForward(dir rl.Vector3) {
	if rl.Vector3Length(dir) == 0 {
		return
	}
	dir = rl.Vector3Normalize(dir)
	t.Rotation = rl.Vector3{
		X: math32.Asin(clamp(dir.Y, -1, 1)) * rl.Rad2deg,
		Y: math32.Atan2(-dir.X, -dir.Z) * rl.Rad2deg,
		Z: 0,
	}
}

// RotateEuler rotates v by Euler angles given in degrees.
func RotateEuler(v, deg rl.Vector3) rl.Vector3 {
	v = rotateAxis(v, 0, deg.X*rl.Deg2rad)
	v = rotateAxis(v, 1, deg.Y*rl.Deg2rad)
	return rotateAxis(v, 2, deg.Z*rl.Deg2rad)
}

// InverseRotateEuler undoes RotateEuler.
func InverseRotateEuler(v, deg rl.Vector3) rl.Vector3 {
	v = rotateAxis(v, 2, -deg.Z*rl.Deg2rad)
	v = rotateAxis(v, 1, -deg.Y*rl.Deg2rad)
	return rotateAxis(v, 0, -deg.X*rl.Deg2rad)
}

func rotateAxis(v rl.Vector3, axis int, rad float32) rl.Vector3 {
	if rad == 0 {
		return v
	}
	s, c := math32.Sincos(rad)
	switch axis {
	case 0:
		return rl.Vector3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
	case 1:
		return rl.Vector3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
	default:
		return rl.Vector3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
