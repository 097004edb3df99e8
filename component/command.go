package component

// Command is one tick of control input for a single ship
// Contradictory turns are allowed and cancel arithmetically
type Command struct {
	Thrust    bool
	TurnLeft  bool
	TurnRight bool
	Fire      bool
}
