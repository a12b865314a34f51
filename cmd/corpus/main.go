package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/corpus"
	"github.com/verdantlab/schemaloom/pkg/loader"
	ioloader "github.com/verdantlab/schemaloom/pkg/loader/io"
	s3loader "github.com/verdantlab/schemaloom/pkg/loader/s3"
	"github.com/verdantlab/schemaloom/pkg/logger"
	"github.com/verdantlab/schemaloom/pkg/logger/console"
	"github.com/verdantlab/schemaloom/pkg/store"
	filestore "github.com/verdantlab/schemaloom/pkg/store/file"
	pgxstore "github.com/verdantlab/schemaloom/pkg/store/pgx"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var documentLoader loader.DocumentLoader
	if util.GetEnv("DOCUMENT_SOURCE") == "s3" {
		l, err := s3loader.NewS3DocumentLoader(ctx, s3loader.NewS3DocumentLoaderParams{
			Bucket:    util.GetEnv("S3_BUCKET"),
			Endpoint:  util.GetEnv("S3_ENDPOINT"),
			Region:    util.GetEnvString("S3_REGION", "us-east-1"),
			AccessKey: util.GetEnv("S3_ACCESS_KEY"),
			SecretKey: util.GetEnv("S3_SECRET_KEY"),
		})
		if err != nil {
			logger.Fatal("Failed to create S3 document loader", "err", err)
		}
		documentLoader = l
	} else {
		documentLoader = ioloader.NewIODocumentLoader()
	}

	generator := corpus.NewGenerator(ctx, corpus.NewGeneratorParams{
		Metadata: loader.NewDocument(loader.NewDocumentParams{
			Kind:   loader.DocumentKindMetadata,
			Path:   util.GetEnvString("METADATA_PATH", "./full_meta.json"),
			Loader: documentLoader,
		}),
		Taxonomy: loader.NewDocument(loader.NewDocumentParams{
			Kind:   loader.DocumentKindTaxonomy,
			Path:   util.GetEnvString("TAXONOMY_PATH", "./business_taxonomy.json"),
			Loader: documentLoader,
		}),
		ViewsOnly: loader.NewDocument(loader.NewDocumentParams{
			Kind:   loader.DocumentKindViewsOnly,
			Path:   util.GetEnvString("VIEWS_ONLY_PATH", "./views_only.json"),
			Loader: documentLoader,
		}),
	})

	result := generator.Generate()
	artifact := store.RunArtifact{
		RunID:  result.RunID,
		Corpus: result.Corpus,
		Stats:  result.Stats,
	}

	fileStore := filestore.NewFileArtifactStore(filestore.NewFileArtifactStoreParams{
		CorpusPath: util.GetEnvString("CORPUS_PATH", "training_data/graph_corpus.txt"),
		StatsPath:  util.GetEnvString("STATS_PATH", "training_data/schema_corpus_stats.json"),
	})
	if err := fileStore.SaveRun(ctx, artifact); err != nil {
		logger.Error("Failed to save corpus artifacts", "err", err)
	}

	if databaseURL := util.GetEnv("DATABASE_URL"); databaseURL != "" {
		if err := pgxstore.Migrate(databaseURL); err != nil {
			logger.Fatal("Failed to run database migrations", "err", err)
		}

		conn, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to database", "err", err)
		}
		defer conn.Close()

		artifactStore := pgxstore.NewPgxArtifactStoreWithConnection(conn)
		err = util.RetryErrWithContext(ctx, 3, func(ctx context.Context) error {
			return artifactStore.SaveRun(ctx, artifact)
		})
		if err != nil {
			logger.Error("Failed to persist corpus run", "run_id", result.RunID, "err", err)
		}
	}

	exactTokens, err := corpus.CountTokens(result.Corpus, corpus.DefaultTokenEncoding)
	if err != nil {
		logger.Warn("Could not compute exact token count", "err", err)
	} else {
		logger.Info("Exact token count", "encoding", corpus.DefaultTokenEncoding, "tokens", exactTokens)
	}

	logger.Info(
		"Corpus saved",
		"run_id", result.RunID,
		"total_parts", result.Stats.TotalParts,
		"characters", result.Stats.Characters,
		"words", result.Stats.Words,
		"estimated_tokens", result.Stats.EstimatedTokens,
	)
}
