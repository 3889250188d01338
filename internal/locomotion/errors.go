package locomotion

import "errors"

var (
	// ErrMissingDependency is returned by NewController when a required
	// collaborator is nil.
	ErrMissingDependency = errors.New("locomotion: missing dependency")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("locomotion: invalid config")
)
