package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verdantlab/schemaloom/internal/server/middleware"
	"github.com/verdantlab/schemaloom/pkg/instruct"
	"github.com/verdantlab/schemaloom/pkg/loader"
	"github.com/verdantlab/schemaloom/pkg/logger"
	"github.com/verdantlab/schemaloom/pkg/schema"
)

// GenerateInstructionsHandler derives instruction pairs from a metadata
// document and returns them in the chat messages format.
func GenerateInstructionsHandler(c echo.Context) error {
	type generateInstructionsBody struct {
		MetadataPath string `json:"metadata_path" validate:"required"`
	}

	type generateInstructionsResponse struct {
		Message      string                 `json:"message"`
		Instructions []instruct.Instruction `json:"instructions,omitempty"`
	}

	data := new(generateInstructionsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, generateInstructionsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, generateInstructionsResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	metadata, err := schema.LoadMetadata(ctx, loader.NewDocument(loader.NewDocumentParams{
		Kind:   loader.DocumentKindMetadata,
		Path:   data.MetadataPath,
		Loader: app.Loader,
	}))
	if err != nil {
		logger.Error("Failed to load metadata document", "path", data.MetadataPath, "err", err)
		return c.JSON(http.StatusBadRequest, generateInstructionsResponse{
			Message: "Could not load metadata document",
		})
	}

	return c.JSON(http.StatusOK, generateInstructionsResponse{
		Message:      "Instructions generated successfully",
		Instructions: instruct.Generate(metadata),
	})
}
