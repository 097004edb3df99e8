package input

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/rocks-and-bullets/core"
)

// Action is a logical ship control, bound per player
type Action uint8

const (
	ActionThrust Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionFire

	actionCount
)

// actionNames maps canonical config names to actions
var actionNames = map[string]Action{
	"thrust":     ActionThrust,
	"turn_left":  ActionTurnLeft,
	"turn_right": ActionTurnRight,
	"fire":       ActionFire,
}

func (a Action) String() string {
	for name, act := range actionNames {
		if act == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// ActionNames returns all action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for name := range actionNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Key is a logical key: one action of one player
type Key struct {
	Player core.PlayerID
	Action Action
}

func (k Key) String() string {
	return k.Player.String() + "." + k.Action.String()
}
