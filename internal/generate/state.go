package generate

// State tracks one generation run through its lifecycle.
type State string

const (
	StateRequested          State = "requested"
	StatePolicyChecked      State = "policy_checked"
	StateSectionsAssembling State = "sections_assembling"
	StateCompiling          State = "compiling"
	StatePersisting         State = "persisting"
	StateCompleted          State = "completed"
	StateAborted            State = "aborted"
)

// transitions lists the legal successor states. Assembly never aborts:
// section failures degrade instead, so Aborted is reachable only from
// the policy check, the compiler and the persist step.
var transitions = map[State][]State{
	StateRequested:          {StatePolicyChecked},
	StatePolicyChecked:      {StateSectionsAssembling, StateAborted},
	StateSectionsAssembling: {StateCompiling},
	StateCompiling:          {StatePersisting, StateAborted},
	StatePersisting:         {StateCompleted, StateAborted},
}

// CanTransition reports whether moving from s to next is legal.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the run is finished.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateAborted
}
