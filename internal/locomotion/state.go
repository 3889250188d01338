package locomotion

// StateKind is the active locomotion mode.
type StateKind int

const (
	Walking StateKind = iota
	Climbing
	stateCount
)

func (k StateKind) String() string {
	switch k {
	case Walking:
		return "walking"
	case Climbing:
		return "climbing"
	}
	return "unknown"
}

// StateChange is the payload of Controller.StateChanged.
type StateChange struct {
	From, To StateKind
}

// stateBehavior is one row of the dispatch table. Every field is set for
// every kind; a new mode is a new row.
type stateBehavior struct {
	move           func(c *Controller, in InputState, dt float32)
	jump           func(c *Controller)
	toggleGrab     func(c *Controller)
	physics        func(c *Controller, dt float32)
	nextStateCheck func(c *Controller)
}

func newBehaviorTable() [stateCount]stateBehavior {
	var t [stateCount]stateBehavior
	t[Walking] = walkingBehavior()
	t[Climbing] = climbingBehavior()
	return t
}
