package types

// VersionKind selects the comparator used to order a chain's members
// when assigning priorities: Debian epoch-version-revision rules,
// PEP 440 rules, or plain manifest order.
type VersionKind string

const (
	VersionKindDeb    VersionKind = "deb"
	VersionKindPep440 VersionKind = "pep440"
	VersionKindNone   VersionKind = "none"
)

// ManifestFile is the on-disk universe description consumed by the
// manifest adapter. Chains appear under `candidates` keyed by UID in
// document order; the `requests` block carries the transaction the
// caller wants.
type ManifestFile struct {
	Job        string              `yaml:"job"`
	Candidates []ManifestChain     `yaml:"candidates"`
	Requests   ManifestRequestSpec `yaml:"requests"`
}

// ManifestChain is one UID's ordered member list.
type ManifestChain struct {
	UID         string              `yaml:"uid"`
	VersionKind VersionKind         `yaml:"version_kind"`
	Members     []ManifestCandidate `yaml:"members"`
}

// ManifestCandidate is one chain member as written in the manifest.
// Digest may be left empty; the loader then derives a deterministic
// one from the candidate's identifying fields.
type ManifestCandidate struct {
	Version        string                 `yaml:"version"`
	Origin         string                 `yaml:"origin"`
	Digest         string                 `yaml:"digest"`
	Depends        []string               `yaml:"depends"`
	Conflicts      []ManifestConflictSpec `yaml:"conflicts"`
	RequiresShlibs []string               `yaml:"requires_shlibs"`
	ProvidesShlibs []string               `yaml:"provides_shlibs"`
}

// ManifestConflictSpec mirrors ConflictSpec in manifest syntax.
type ManifestConflictSpec struct {
	UID  string `yaml:"uid"`
	Kind string `yaml:"kind"`
}

// ManifestRequestSpec names the explicit requests. Entries are either
// a bare UID (the loader picks the natural chain member for the
// request direction) or `uid=version` to pin one member exactly.
type ManifestRequestSpec struct {
	Install []string `yaml:"install"`
	Delete  []string `yaml:"delete"`
}
