package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/verdantlab/schemaloom/pkg/corpus"
	"github.com/verdantlab/schemaloom/pkg/store"
)

func TestSaveRun(t *testing.T) {
	dir := t.TempDir()
	s := NewFileArtifactStore(NewFileArtifactStoreParams{
		CorpusPath: filepath.Join(dir, "training_data", "graph_corpus.txt"),
		StatsPath:  filepath.Join(dir, "training_data", "schema_corpus_stats.json"),
	})

	artifact := store.RunArtifact{
		RunID:  "run-1",
		Corpus: "part one\n\n---\n\npart two",
		Stats:  corpus.Stats{TotalParts: 2, Characters: 24, Words: 5, EstimatedTokens: 7},
	}
	if err := s.SaveRun(context.Background(), artifact); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	content, err := os.ReadFile(s.corpusPath)
	if err != nil {
		t.Fatalf("reading corpus file: %v", err)
	}
	if string(content) != artifact.Corpus {
		t.Errorf("corpus file = %q, want %q", content, artifact.Corpus)
	}

	statsContent, err := os.ReadFile(s.statsPath)
	if err != nil {
		t.Fatalf("reading stats file: %v", err)
	}
	var stats corpus.Stats
	if err := json.Unmarshal(statsContent, &stats); err != nil {
		t.Fatalf("decoding stats file: %v", err)
	}
	if stats != artifact.Stats {
		t.Errorf("stats = %+v, want %+v", stats, artifact.Stats)
	}
}

func TestSaveRunUnwritablePath(t *testing.T) {
	s := NewFileArtifactStore(NewFileArtifactStoreParams{
		CorpusPath: filepath.Join(string(os.PathSeparator), "dev", "null", "nope", "corpus.txt"),
		StatsPath:  filepath.Join(t.TempDir(), "stats.json"),
	})
	if err := s.SaveRun(context.Background(), store.RunArtifact{RunID: "run-1"}); err == nil {
		t.Error("SaveRun() expected an error for an unwritable path")
	}
}
