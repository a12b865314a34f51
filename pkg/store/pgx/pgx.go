package pgx

import (
	"context"
	"embed"
	"fmt"
	"strings"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"

	"github.com/verdantlab/schemaloom/pkg/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
}

// PgxArtifactStore persists generation runs in PostgreSQL, one row per run,
// so corpus revisions stay queryable over time.
type PgxArtifactStore struct {
	conn pgxIConn
}

// NewPgxArtifactStoreWithConnection creates a PostgreSQL-backed artifact
// store using an existing connection or pool. Run Migrate first to ensure
// the schema exists.
func NewPgxArtifactStoreWithConnection(conn pgxIConn) *PgxArtifactStore {
	return &PgxArtifactStore{conn: conn}
}

// Migrate applies the embedded schema migrations against the database at
// databaseURL. The postgres:// scheme is rewritten for the pgx/v5 migrate
// driver.
func Migrate(databaseURL string) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	url := databaseURL
	if rest, ok := strings.CutPrefix(url, "postgres://"); ok {
		url = "pgx5://" + rest
	} else if rest, ok := strings.CutPrefix(url, "postgresql://"); ok {
		url = "pgx5://" + rest
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// SaveRun inserts one row describing the run. Re-saving a run ID updates
// the stored corpus and stats in place.
func (s *PgxArtifactStore) SaveRun(ctx context.Context, artifact store.RunArtifact) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO corpus_runs (run_id, corpus, total_parts, characters, words, estimated_tokens)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (run_id) DO UPDATE SET
			corpus = EXCLUDED.corpus,
			total_parts = EXCLUDED.total_parts,
			characters = EXCLUDED.characters,
			words = EXCLUDED.words,
			estimated_tokens = EXCLUDED.estimated_tokens
	`,
		artifact.RunID,
		artifact.Corpus,
		artifact.Stats.TotalParts,
		artifact.Stats.Characters,
		artifact.Stats.Words,
		artifact.Stats.EstimatedTokens,
	)
	if err != nil {
		return fmt.Errorf("failed to save corpus run: %w", err)
	}
	return nil
}

// GetRun loads one persisted run by ID.
func (s *PgxArtifactStore) GetRun(ctx context.Context, runID string) (store.RunArtifact, error) {
	var artifact store.RunArtifact
	err := s.conn.QueryRow(ctx, `
		SELECT run_id, corpus, total_parts, characters, words, estimated_tokens
		FROM corpus_runs
		WHERE run_id = $1
	`, runID).Scan(
		&artifact.RunID,
		&artifact.Corpus,
		&artifact.Stats.TotalParts,
		&artifact.Stats.Characters,
		&artifact.Stats.Words,
		&artifact.Stats.EstimatedTokens,
	)
	if err != nil {
		return store.RunArtifact{}, fmt.Errorf("failed to load corpus run %s: %w", runID, err)
	}
	return artifact, nil
}
