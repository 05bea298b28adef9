package search

// State is the lifecycle state of a Session.
type State int

const (
	Running State = iota
	StoppedByCandidateLimit
	StoppedByGoal
	StoppedByCancellation
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case StoppedByCandidateLimit:
		return "candidate_limit"
	case StoppedByGoal:
		return "goal"
	case StoppedByCancellation:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Stopped reports whether s is terminal.
func (s State) Stopped() bool {
	return s != Running
}
