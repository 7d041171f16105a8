package model

import "testing"

func TestJobState_IsFinished(t *testing.T) {
	tests := []struct {
		state    JobState
		expected bool
	}{
		{JobPending, false},
		{JobRunning, false},
		{JobSucceeded, true},
		{JobFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("JobState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestJobState_String(t *testing.T) {
	state := JobRunning
	expected := "Running"
	result := state.String()

	if result != expected {
		t.Errorf("JobState.String() = %s, expected %s", result, expected)
	}
}
