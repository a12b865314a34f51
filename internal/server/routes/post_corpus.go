package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verdantlab/schemaloom/internal/server/middleware"
	"github.com/verdantlab/schemaloom/pkg/corpus"
	"github.com/verdantlab/schemaloom/pkg/loader"
	"github.com/verdantlab/schemaloom/pkg/logger"
	"github.com/verdantlab/schemaloom/pkg/store"
	pgxstore "github.com/verdantlab/schemaloom/pkg/store/pgx"
)

// GenerateCorpusHandler runs a corpus generation over the given documents
// and returns the run ID, statistics, and optionally the corpus text.
func GenerateCorpusHandler(c echo.Context) error {
	type generateCorpusBody struct {
		MetadataPath  string         `json:"metadata_path" validate:"required"`
		TaxonomyPath  string         `json:"taxonomy_path" validate:"required"`
		Stages        *corpus.Stages `json:"stages,omitempty"`
		IncludeCorpus bool           `json:"include_corpus"`
	}

	type generateCorpusResponse struct {
		Message string        `json:"message"`
		RunID   string        `json:"run_id,omitempty"`
		Stats   *corpus.Stats `json:"stats,omitempty"`
		Corpus  string        `json:"corpus,omitempty"`
	}

	data := new(generateCorpusBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, generateCorpusResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, generateCorpusResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	generator := corpus.NewGenerator(ctx, corpus.NewGeneratorParams{
		Metadata: loader.NewDocument(loader.NewDocumentParams{
			Kind:   loader.DocumentKindMetadata,
			Path:   data.MetadataPath,
			Loader: app.Loader,
		}),
		Taxonomy: loader.NewDocument(loader.NewDocumentParams{
			Kind:   loader.DocumentKindTaxonomy,
			Path:   data.TaxonomyPath,
			Loader: app.Loader,
		}),
		Stages: data.Stages,
	})

	result := generator.Generate()

	if app.DBConn != nil {
		artifactStore := pgxstore.NewPgxArtifactStoreWithConnection(app.DBConn)
		if err := artifactStore.SaveRun(ctx, store.RunArtifact{
			RunID:  result.RunID,
			Corpus: result.Corpus,
			Stats:  result.Stats,
		}); err != nil {
			logger.Error("Failed to persist corpus run", "run_id", result.RunID, "err", err)
			return c.JSON(http.StatusInternalServerError, generateCorpusResponse{
				Message: "Internal server error",
			})
		}
	}

	resp := generateCorpusResponse{
		Message: "Corpus generated successfully",
		RunID:   result.RunID,
		Stats:   &result.Stats,
	}
	if data.IncludeCorpus {
		resp.Corpus = result.Corpus
	}

	return c.JSON(http.StatusOK, resp)
}
