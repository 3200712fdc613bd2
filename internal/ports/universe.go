package ports

import "depsolve/internal/types"

// ManifestPort loads the on-disk universe description. The solver core
// never reads files itself; universe construction stays behind this
// boundary so another back-end (a package database, a repository
// scanner) can feed the same builder.
type ManifestPort interface {
	LoadManifest(path string) (types.ManifestFile, error)
}
