package types

// Chain is every Candidate sharing one UID, in construction order. The
// first element is the chain head: the encoder's chain-exclusion
// clause and the UID index both key off it.
type Chain struct {
	UID     string
	Members []Candidate
}

// JobType is the front end's transaction kind; it feeds both the
// model projector (INSTALL vs FETCH for a lone add) and the
// initial-guess heuristic (UPGRADE has its own guess table row).
type JobType string

const (
	JobInstall JobType = "install"
	JobUpgrade JobType = "upgrade"
	JobDelete  JobType = "delete"
	JobFetch   JobType = "fetch"
)

// Universe is the solver's entire upstream contract: the candidate
// space, the shared-library provides index, the two request sets
// keyed by Candidate ID, and the job type.
type Universe struct {
	Chains        []Chain
	Provides      map[string][]Candidate
	RequestAdd    map[int]bool
	RequestDelete map[int]bool
	Job           JobType
}
