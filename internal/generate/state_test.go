package generate

import "testing"

func TestStateTransitions(t *testing.T) {
	legal := []struct{ from, to State }{
		{StateRequested, StatePolicyChecked},
		{StatePolicyChecked, StateSectionsAssembling},
		{StatePolicyChecked, StateAborted},
		{StateSectionsAssembling, StateCompiling},
		{StateCompiling, StatePersisting},
		{StateCompiling, StateAborted},
		{StatePersisting, StateCompleted},
		{StatePersisting, StateAborted},
	}
	for _, tc := range legal {
		if !tc.from.CanTransition(tc.to) {
			t.Errorf("%s -> %s should be legal", tc.from, tc.to)
		}
	}

	illegal := []struct{ from, to State }{
		{StateRequested, StateAborted},
		{StateSectionsAssembling, StateAborted},
		{StateRequested, StateCompleted},
		{StateCompleted, StateRequested},
		{StateAborted, StatePolicyChecked},
	}
	for _, tc := range illegal {
		if tc.from.CanTransition(tc.to) {
			t.Errorf("%s -> %s should be illegal", tc.from, tc.to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if !StateCompleted.Terminal() || !StateAborted.Terminal() {
		t.Fatal("completed and aborted are terminal")
	}
	if StateCompiling.Terminal() {
		t.Fatal("compiling is not terminal")
	}
}
