package locomotion

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SurfaceKind is the classification of a contact by its angle to up.
type SurfaceKind int

const (
	Flat SurfaceKind = iota
	MildSlope
	SteepSlope
	Wall
)

func (k SurfaceKind) String() string {
	switch k {
	case Flat:
		return "flat"
	case MildSlope:
		return "mild_slope"
	case SteepSlope:
		return "steep_slope"
	case Wall:
		return "wall"
	}
	return "unknown"
}

// mildSlopeFloor is the smallest angle that counts as a slope at all.
const mildSlopeFloor = 0.1

// SurfaceAngle is the angle in degrees between normal and up, rounded to
// one decimal place. A zero normal is treated as flat.
func SurfaceAngle(normal, up rl.Vector3) float32 {
	if rl.Vector3LengthSqr(normal) == 0 {
		return 0
	}
	deg := rl.Vector3Angle(normal, up) * rl.Rad2deg
	return math32.Round(deg*10) / 10
}

// Classify buckets an angle. Exactly one kind applies to any angle; the
// boundary a == maxWalkable is Flat.
func Classify(angle, maxWalkable, wallAngle float32) SurfaceKind {
	switch {
	case angle >= wallAngle:
		return Wall
	case angle > maxWalkable:
		return SteepSlope
	case angle > mildSlopeFloor && angle < maxWalkable:
		return MildSlope
	}
	return Flat
}

// SurfaceFlags are the per-contact classification results kept by the
// controller between steps.
type SurfaceFlags struct {
	OnMildSlope              bool
	OnSteepSlope             bool
	OnWall                   bool
	HasContactWithSteepSlope bool
	SlopeAngle               float32
	HitAngle                 float32
}

// classifyContact fills the flags from the re-cast slope angle and the raw
// contact angle.
func classifyContact(slopeAngle, hitAngle, maxWalkable, wallAngle float32) SurfaceFlags {
	kind := Classify(slopeAngle, maxWalkable, wallAngle)
	return SurfaceFlags{
		OnMildSlope:              kind == MildSlope,
		OnSteepSlope:             kind == SteepSlope,
		OnWall:                   kind == Wall,
		HasContactWithSteepSlope: Classify(hitAngle, maxWalkable, wallAngle) == SteepSlope,
		SlopeAngle:               slopeAngle,
		HitAngle:                 hitAngle,
	}
}
