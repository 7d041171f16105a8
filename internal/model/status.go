package model

// JobState represents the lifecycle state of a download job
type JobState string

const (
	// JobPending means the job was created but the transfer has not begun
	JobPending JobState = "Pending"

	// JobRunning means the transfer is in progress on a worker goroutine
	JobRunning JobState = "Running"

	// JobSucceeded means the collaborator reported success
	JobSucceeded JobState = "Succeeded"

	// JobFailed means the collaborator reported a failure
	JobFailed JobState = "Failed"
)

// String returns the string representation of JobState
func (s JobState) String() string {
	return string(s)
}

// IsFinished returns true if the job reached a terminal state
func (s JobState) IsFinished() bool {
	return s == JobSucceeded || s == JobFailed
}
