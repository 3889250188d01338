package sim

import (
	_ "embed"

	"locomotion/internal/scenefile"
)

//go:embed assets/playground.yaml
var defaultScene []byte

//go:embed assets/tour.yaml
var defaultScript []byte

// DefaultScene is the built-in playground: ground, a climbing wall, a step,
// mild and steep slopes, a lift, a moving climbing block, a crate and a
// boulder.
func DefaultScene() (*scenefile.SceneFile, error) {
	return scenefile.Parse(defaultScene)
}

// DefaultScript walks to the wall, climbs, lets go, then runs and jumps.
func DefaultScript() (*Script, error) {
	return ParseScript(defaultScript)
}
