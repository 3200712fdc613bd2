// Package types holds the data shared across the solver's package
// boundary: the upstream universe contract, the downstream action
// list, and the enums both sides agree on.
package types

// Origin tags where a Candidate currently stands relative to the
// system: already present, or only available from a repository.
type Origin string

const (
	OriginInstalled Origin = "installed"
	OriginRemote    Origin = "remote"
)

// ConflictKind narrows which members of a conflict's target chain
// actually produce a conflict clause, per the polarity filter in
// the encoder's conflict rule.
type ConflictKind string

const (
	ConflictRemoteLocal  ConflictKind = "remote_local"
	ConflictRemoteRemote ConflictKind = "remote_remote"
)

// ConflictSpec names one declared conflict: the UID of the chain it
// targets, and the kind that decides which members of that chain are
// retained when the encoder builds the conflict clause.
type ConflictSpec struct {
	UID  string
	Kind ConflictKind
}

// Candidate is one concrete package version in the universe. ID is a
// stable, dense index assigned during universe construction; request
// sets key on it so candidate identity survives copying.
type Candidate struct {
	ID      int
	UID     string
	Version string
	Digest  string
	Origin  Origin

	// Depends lists the UIDs this candidate requires; an entry with no
	// matching chain is a soft encoding failure, never fatal.
	Depends []string

	// Conflicts lists the chains this candidate may not coexist with.
	Conflicts []ConflictSpec

	// RequiresShlibs is only consulted when Origin is OriginRemote.
	RequiresShlibs []string

	// ProvidesShlibs is consulted by other candidates' RequiresShlibs
	// through the universe's provides index.
	ProvidesShlibs []string

	// Priority is an ordering hint copied onto the solver Variable; it
	// does not affect satisfiability, only which chain member a
	// presentation layer names first when several would do.
	Priority int
}
