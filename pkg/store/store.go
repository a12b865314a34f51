package store

import (
	"context"

	"github.com/verdantlab/schemaloom/pkg/corpus"
)

// RunArtifact bundles everything a generation run produces that is worth
// persisting.
type RunArtifact struct {
	RunID  string
	Corpus string
	Stats  corpus.Stats
}

// ArtifactStore defines the interface for persisting generation runs.
// Implementations write to the local filesystem or to PostgreSQL.
type ArtifactStore interface {
	SaveRun(ctx context.Context, artifact RunArtifact) error
}
