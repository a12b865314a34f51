package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verdantlab/schemaloom/pkg/store"
)

// FileArtifactStore persists generation runs as a corpus text file and a
// stats JSON file. Subsequent runs overwrite earlier output, matching the
// regenerate-in-place workflow of training data preparation.
type FileArtifactStore struct {
	corpusPath string
	statsPath  string
}

// NewFileArtifactStoreParams defines the output locations for a
// FileArtifactStore.
type NewFileArtifactStoreParams struct {
	CorpusPath string
	StatsPath  string
}

// NewFileArtifactStore creates a filesystem-backed artifact store.
func NewFileArtifactStore(params NewFileArtifactStoreParams) *FileArtifactStore {
	return &FileArtifactStore{
		corpusPath: params.CorpusPath,
		statsPath:  params.StatsPath,
	}
}

// SaveRun writes the corpus text and the stats JSON, creating parent
// directories as needed. A failure on either file surfaces as an error
// rather than being swallowed.
func (s *FileArtifactStore) SaveRun(_ context.Context, artifact store.RunArtifact) error {
	for _, path := range []string{s.corpusPath, s.statsPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(s.corpusPath, []byte(artifact.Corpus), 0o644); err != nil {
		return fmt.Errorf("failed to write corpus file: %w", err)
	}

	stats, err := json.MarshalIndent(artifact.Stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := os.WriteFile(s.statsPath, stats, 0o644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}
