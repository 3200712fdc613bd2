// Package app wires the solver core to its ports: manifest loading,
// plan output, and the optional external solver. Each exported method
// is one CLI verb's worth of orchestration.
package app

import (
	"time"

	"depsolve/internal/adapters"
	"depsolve/internal/ports"
)

type Service struct {
	Manifest    ports.ManifestPort
	ModelReader ports.ModelReaderPort
	External    ports.ExternalSolverPort
	Clock       func() time.Time
}

func NewService() Service {
	return Service{
		Manifest:    adapters.NewManifestFileAdapter(),
		ModelReader: adapters.NewModelFileAdapter(),
		Clock:       time.Now,
	}
}
