package demo

import "fmt"

// Action is something a viewer can do to a session
type Action string

// Action constants
const (
	ActionNext              Action = "next"
	ActionReset             Action = "reset"
	ActionToggleEvaluations Action = "toggle_evaluations"
	ActionToggleWinners     Action = "toggle_winners"
	ActionNewHand           Action = "new_hand"
)

// Actions lists every action
var Actions = []Action{ActionNext, ActionReset, ActionToggleEvaluations, ActionToggleWinners, ActionNewHand}

// ParseAction validates an action name
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
