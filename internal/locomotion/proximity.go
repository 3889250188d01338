package locomotion

import (
	"locomotion/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// goldenAngle is pi*(3-sqrt(5)) in radians.
const goldenAngle = 2.39996322973

// noCandidateDot is below any achievable dot product of unit-ish vectors;
// a selection counts only when it beats acceptDot.
const (
	noCandidateDot = -2
	acceptDot      = -1.5
)

// FibonacciSphere returns n unit directions spread evenly over a sphere.
// The first points straight up and the last straight down. n < 2 yields nil.
func FibonacciSphere(n int) []rl.Vector3 {
	if n < 2 {
		return nil
	}
	dirs := make([]rl.Vector3, n)
	for i := 0; i < n; i++ {
		y := 1 - 2*float32(i)/float32(n-1)
		r := math32.Sqrt(math32.Max(0, 1-y*y))
		theta := goldenAngle * float32(i)
		dirs[i] = rl.Vector3{X: math32.Cos(theta) * r, Y: y, Z: math32.Sin(theta) * r}
	}
	return dirs
}

// Raycaster is the slice of the world a proximity search needs.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool)
}

// RaySphere casts one ray per direction from origin and returns the hits.
// Each ray is reported to obs when it is non-nil.
func RaySphere(world Raycaster, origin rl.Vector3, dirs []rl.Vector3, radius float32, mask engine.LayerMask, obs Observer) []engine.RaycastResult {
	var hits []engine.RaycastResult
	for _, d := range dirs {
		if obs != nil {
			obs.Ray(rl.Vector3Add(origin, d), d, 0.1, rl.SkyBlue)
		}
		if hit, ok := world.Raycast(origin, d, radius, mask); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

// Candidate is the outcome of SelectSurface.
type Candidate struct {
	Hit      engine.RaycastResult
	Dot      float32
	HighestY float32
	Found    bool
}

// SelectSurface picks the non-walkable hit whose normal faces origin most
// directly. HighestY covers every hit, walkable or not, and is -Inf when
// hits is empty.
func SelectSurface(hits []engine.RaycastResult, origin rl.Vector3, maxWalkable float32) Candidate {
	c := Candidate{Dot: noCandidateDot, HighestY: math32.Inf(-1)}
	for _, h := range hits {
		if h.Point.Y > c.HighestY {
			c.HighestY = h.Point.Y
		}
		if rl.Vector3Angle(h.Normal, engine.AxisUp)*rl.Rad2deg <= maxWalkable {
			continue
		}
		d := rl.Vector3DotProduct(h.Normal, rl.Vector3Subtract(origin, h.Point))
		if d > c.Dot {
			c.Dot = d
			c.Hit = h
		}
	}
	c.Found = c.Dot > acceptDot
	return c
}
