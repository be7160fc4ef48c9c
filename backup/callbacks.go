package backup

// Phases reported in Progress.Phase.
const (
	PhaseListing   = "listing"
	PhaseBackingUp = "backing up"
	PhaseRestoring = "restoring"
	PhaseComplete  = "complete"
)

// Progress describes how far a backup or restore has come.
type Progress struct {
	// Phase is one of the Phase constants
	Phase string

	// Key is the command being read or written
	Key string

	// Current is the number of commands handled so far
	Current int

	// Total is the number of commands to handle
	Total int
}

// ProgressCallback is called as each command is handled.
// Implementations should return quickly.
type ProgressCallback func(Progress)
