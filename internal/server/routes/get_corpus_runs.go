package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verdantlab/schemaloom/internal/server/middleware"
	"github.com/verdantlab/schemaloom/pkg/corpus"
	"github.com/verdantlab/schemaloom/pkg/logger"
	pgxstore "github.com/verdantlab/schemaloom/pkg/store/pgx"
)

// GetCorpusRunHandler loads a persisted generation run by ID.
func GetCorpusRunHandler(c echo.Context) error {
	type getCorpusRunParams struct {
		RunID string `param:"run_id" validate:"required"`
	}

	type getCorpusRunResponse struct {
		Message string        `json:"message"`
		RunID   string        `json:"run_id,omitempty"`
		Stats   *corpus.Stats `json:"stats,omitempty"`
		Corpus  string        `json:"corpus,omitempty"`
	}

	params := new(getCorpusRunParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCorpusRunResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCorpusRunResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	if app.DBConn == nil {
		return c.JSON(http.StatusNotImplemented, getCorpusRunResponse{
			Message: "Run persistence is not configured",
		})
	}

	ctx := c.Request().Context()
	artifactStore := pgxstore.NewPgxArtifactStoreWithConnection(app.DBConn)
	artifact, err := artifactStore.GetRun(ctx, params.RunID)
	if err != nil {
		logger.Error("Failed to load corpus run", "run_id", params.RunID, "err", err)
		return c.JSON(http.StatusNotFound, getCorpusRunResponse{
			Message: "Run not found",
		})
	}

	return c.JSON(http.StatusOK, getCorpusRunResponse{
		Message: "OK",
		RunID:   artifact.RunID,
		Stats:   &artifact.Stats,
		Corpus:  artifact.Corpus,
	})
}
