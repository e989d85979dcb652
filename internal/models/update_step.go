package models

// UpdateStep identifies a phase of the per-repository update sequence.
//
// The set is open-ended: new steps may be appended over time, so any switch
// over UpdateStep must keep a default arm instead of matching exhaustively.
type UpdateStep int

const (
	StepStarted UpdateStep = iota
	StepDetectingBranch
	StepCheckingChanges
	StepFetching
	StepStashing
	StepCheckingOut
	StepPulling
	StepRestoringBranch
	StepPoppingStash
	StepCompleted
)

// String returns the step name used in failure reports and summaries.
func (s UpdateStep) String() string {
	switch s {
	case StepStarted:
		return "Started"
	case StepDetectingBranch:
		return "DetectingBranch"
	case StepCheckingChanges:
		return "CheckingChanges"
	case StepFetching:
		return "Fetching"
	case StepStashing:
		return "Stashing"
	case StepCheckingOut:
		return "CheckingOut"
	case StepPulling:
		return "Pulling"
	case StepRestoringBranch:
		return "RestoringBranch"
	case StepPoppingStash:
		return "PoppingStash"
	case StepCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Message returns the progress line shown while the step is running.
func (s UpdateStep) Message() string {
	switch s {
	case StepStarted:
		return "Starting update..."
	case StepDetectingBranch:
		return "Detecting current branch..."
	case StepCheckingChanges:
		return "Checking for uncommitted changes..."
	case StepFetching:
		return "Fetching from origin..."
	case StepStashing:
		return "Stashing uncommitted changes..."
	case StepCheckingOut:
		return "Checking out main branch..."
	case StepPulling:
		return "Pulling latest changes..."
	case StepRestoringBranch:
		return "Restoring original branch..."
	case StepPoppingStash:
		return "Restoring stashed changes..."
	case StepCompleted:
		return "Completed"
	default:
		return "Working..."
	}
}
