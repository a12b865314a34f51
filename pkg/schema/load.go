package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/verdantlab/schemaloom/pkg/loader"
	"github.com/verdantlab/schemaloom/pkg/logger"
)

// LoadMetadata loads and decodes the metadata document. Malformed JSON is
// run through a repair pass before giving up.
func LoadMetadata(ctx context.Context, doc loader.Document) (MetadataGraph, error) {
	var graph MetadataGraph
	if err := loadJSON(ctx, doc, &graph); err != nil {
		return MetadataGraph{}, fmt.Errorf("failed to load metadata document: %w", err)
	}
	return graph, nil
}

// LoadTaxonomy loads and decodes the business taxonomy document.
func LoadTaxonomy(ctx context.Context, doc loader.Document) (TaxonomyGraph, error) {
	var graph TaxonomyGraph
	if err := loadJSON(ctx, doc, &graph); err != nil {
		return TaxonomyGraph{}, fmt.Errorf("failed to load taxonomy document: %w", err)
	}
	return graph, nil
}

func loadJSON[T any](ctx context.Context, doc loader.Document, out *T) error {
	content, err := doc.GetBytes(ctx)
	if err != nil {
		return err
	}

	decodeErr := json.Unmarshal(content, out)
	if decodeErr == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(content))
	if repairErr != nil {
		return decodeErr
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return decodeErr
	}

	logger.Warn("Repaired malformed JSON document", "kind", doc.Kind, "path", doc.Path)
	return nil
}
