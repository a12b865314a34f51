package corpus

import (
	"context"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/verdantlab/schemaloom/pkg/loader"
	"github.com/verdantlab/schemaloom/pkg/logger"
	"github.com/verdantlab/schemaloom/pkg/schema"
)

// BlockSeparator joins the corpus text blocks.
const BlockSeparator = "\n\n---\n\n"

// DefaultTokenEncoding is the tiktoken encoding used for exact token counts.
const DefaultTokenEncoding = "o200k_base"

// Stages toggles the individual generation stages. Disabling a stage
// removes its blocks from the corpus without changing the output format.
type Stages struct {
	Catalog       bool
	Cubes         bool
	Views         bool
	Taxonomy      bool
	Relationships bool
	QueryPatterns bool
}

// AllStages returns the default configuration with every stage enabled.
func AllStages() Stages {
	return Stages{
		Catalog:       true,
		Cubes:         true,
		Views:         true,
		Taxonomy:      true,
		Relationships: true,
		QueryPatterns: true,
	}
}

// Generator turns a metadata graph and a business taxonomy into a
// natural-language training corpus. Both documents are loaded once at
// construction and are immutable for the generator's lifetime; a failed
// load degrades that document to empty so partial generation can proceed.
type Generator struct {
	metadata schema.MetadataGraph
	taxonomy schema.TaxonomyGraph

	// viewsOnly is accepted for interface completeness but not consumed
	// by the current pipeline.
	viewsOnly loader.Document

	stages            Stages
	extractor         RelationshipExtractor
	queryPatternLimit int
}

// NewGeneratorParams configures a Generator. Stages defaults to all
// enabled, Extractor to the phrase-based heuristic, and
// QueryPatternLimit to DefaultQueryPatternLimit.
type NewGeneratorParams struct {
	Metadata  loader.Document
	Taxonomy  loader.Document
	ViewsOnly loader.Document

	Stages            *Stages
	Extractor         RelationshipExtractor
	QueryPatternLimit int
}

// NewGenerator loads both input documents and returns a ready generator.
// Load failures are logged and the affected document is replaced by an
// empty one; generation never fails on missing or malformed input.
func NewGenerator(ctx context.Context, params NewGeneratorParams) *Generator {
	metadata, err := schema.LoadMetadata(ctx, params.Metadata)
	if err != nil {
		logger.Error("Could not load metadata document, continuing with an empty graph", "path", params.Metadata.Path, "err", err)
		metadata = schema.MetadataGraph{}
	}

	taxonomy, err := schema.LoadTaxonomy(ctx, params.Taxonomy)
	if err != nil {
		logger.Error("Could not load taxonomy document, continuing with an empty taxonomy", "path", params.Taxonomy.Path, "err", err)
		taxonomy = schema.TaxonomyGraph{}
	}

	stages := AllStages()
	if params.Stages != nil {
		stages = *params.Stages
	}

	var extractor RelationshipExtractor = PhraseExtractor{}
	if params.Extractor != nil {
		extractor = params.Extractor
	}

	limit := params.QueryPatternLimit
	if limit <= 0 {
		limit = DefaultQueryPatternLimit
	}

	return &Generator{
		metadata:          metadata,
		taxonomy:          taxonomy,
		viewsOnly:         params.ViewsOnly,
		stages:            stages,
		extractor:         extractor,
		queryPatternLimit: limit,
	}
}

// Result is the outcome of one corpus generation run.
type Result struct {
	RunID  string
	Corpus string
	Stats  Stats
}

// Generate runs every enabled stage in fixed order, joins the non-empty
// blocks with BlockSeparator, and computes statistics. The seen-entities
// set is created fresh per run, so each view renders at most once per
// generated corpus regardless of how often it is referenced.
func (g *Generator) Generate() Result {
	runID, err := gonanoid.New()
	if err != nil {
		logger.Error("Failed to generate run ID", "err", err)
		runID = "unknown"
	}

	partition := schema.Classify(g.metadata)
	logger.Info(
		"Starting corpus generation",
		"run_id", runID,
		"catalog_entities", len(partition.Catalog),
		"views", len(partition.Views),
		"cubes", len(partition.Cubes),
	)

	var parts []string
	appendPart := func(block string) {
		if block != "" {
			parts = append(parts, block)
		}
	}

	seen := make(map[string]struct{})

	if g.stages.Catalog {
		for _, catalog := range partition.Catalog {
			appendPart(DescribeCatalog(catalog))
		}
	}

	if g.stages.Cubes {
		for _, cube := range partition.Cubes {
			appendPart(DescribeCube(cube))
		}
	}

	if g.stages.Views {
		for _, view := range partition.Views {
			appendPart(DescribeView(view, g.taxonomy, seen))
		}
	}

	if g.stages.Taxonomy {
		appendPart(RenderTaxonomy(g.taxonomy))
	}

	if g.stages.Relationships {
		appendPart(RenderRelationships(partition.Views, g.extractor))
	}

	if g.stages.QueryPatterns {
		appendPart(RenderQueryPatterns(g.metadata.Cubes, g.queryPatternLimit))
	}

	corpus := strings.Join(parts, BlockSeparator)
	stats := CalculateStats(parts, corpus)

	logger.Info(
		"Corpus generation complete",
		"run_id", runID,
		"total_parts", stats.TotalParts,
		"characters", stats.Characters,
		"words", stats.Words,
		"estimated_tokens", stats.EstimatedTokens,
	)

	return Result{
		RunID:  runID,
		Corpus: corpus,
		Stats:  stats,
	}
}
