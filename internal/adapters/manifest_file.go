// Package adapters implements the file and process back-ends behind
// the ports: manifest loading, plan output, external solver model I/O,
// and the external solver runner itself.
package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"depsolve/internal/ports"
	"depsolve/internal/types"
)

// ManifestFileAdapter loads a YAML universe manifest from disk.
// Loaded files are cached by path.
type ManifestFileAdapter struct {
	cached map[string]types.ManifestFile
}

func NewManifestFileAdapter() *ManifestFileAdapter {
	return &ManifestFileAdapter{cached: map[string]types.ManifestFile{}}
}

func (a *ManifestFileAdapter) LoadManifest(path string) (types.ManifestFile, error) {
	if strings.TrimSpace(path) == "" {
		return types.ManifestFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is empty")
	}
	if cached, ok := a.cached[path]; ok {
		return cached, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ManifestFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	var manifest types.ManifestFile
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.ManifestFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest file is not valid YAML").
			WithCause(err)
	}
	a.cached[path] = manifest
	return manifest, nil
}

var _ ports.ManifestPort = (*ManifestFileAdapter)(nil)
