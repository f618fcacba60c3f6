package state

// SessionState represents the lifecycle of a simulation session
type SessionState int

const (
	StateIdle SessionState = iota
	StateRunning
	StateFinished
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}
