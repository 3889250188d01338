package locomotion

import rl "github.com/gen2brain/raylib-go/raylib"

// Observer receives debug geometry. Rays run from origin along dir for
// length units. Calls are made only when Config.Debug is set.
type Observer interface {
	Ray(origin, dir rl.Vector3, length float32, color rl.Color)
}

// RayRecorder collects rays for inspection or deferred drawing.
type RayRecorder struct {
	Rays []DebugRay
}

type DebugRay struct {
	Origin, Dir rl.Vector3
	Length      float32
	Color       rl.Color
}

func (r *RayRecorder) Ray(origin, dir rl.Vector3, length float32, color rl.Color) {
	r.Rays = append(r.Rays, DebugRay{Origin: origin, Dir: dir, Length: length, Color: color})
}

// Reset drops recorded rays and keeps the backing array.
func (r *RayRecorder) Reset() { r.Rays = r.Rays[:0] }

// End is the far end of the ray.
func (d DebugRay) End() rl.Vector3 {
	return rl.Vector3Add(d.Origin, rl.Vector3Scale(d.Dir, d.Length))
}
