package corpus

import (
	"fmt"
	"strings"

	"github.com/verdantlab/schemaloom/pkg/schema"
)

// RelationshipExtractor pulls the names of the cubes a view is built from
// out of the view record. Implementations are best-effort: a view whose
// description does not match the expected convention yields no extraction.
//
// The extractor sits behind an interface so the fragile free-text variant
// can be swapped for a stricter parser without touching the pipeline.
type RelationshipExtractor interface {
	Extract(view schema.Entity) ([]string, bool)
}

const (
	combinedViewPhrase    = "A combined view of"
	combinedViewSeparator = " to provide"
)

// PhraseExtractor extracts cube names from free-text view descriptions
// following the "A combined view of X, Y, and Z to provide ..." phrasing
// convention. It is a substring heuristic, not a parser, and is expected
// to miss descriptions that deviate from the template.
type PhraseExtractor struct{}

// Extract returns the cube names referenced by the view description, or
// false when the trigger phrase is absent or nothing parses out.
func (PhraseExtractor) Extract(view schema.Entity) ([]string, bool) {
	_, tail, found := strings.Cut(view.Description, combinedViewPhrase)
	if !found {
		return nil, false
	}
	if head, _, ok := strings.Cut(tail, combinedViewSeparator); ok {
		tail = head
	}
	tail = strings.ReplaceAll(tail, "and ", "")

	var names []string
	for _, token := range strings.Split(tail, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			names = append(names, token)
		}
	}
	if len(names) == 0 {
		return nil, false
	}
	return names, true
}

// RenderRelationships emits one sentence per view whose composition could
// be extracted, naming the view and its source cubes. Views yielding no
// extraction are skipped silently; with no extractions at all the section
// is omitted entirely.
func RenderRelationships(views []schema.Entity, extractor RelationshipExtractor) string {
	var lines []string
	for _, view := range views {
		names, ok := extractor.Extract(view)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"The **%s** view is constructed by combining data from the following cubes: **%s**.",
			view.DisplayTitle(),
			strings.Join(names, ", "),
		))
	}

	if len(lines) == 0 {
		return ""
	}
	return "# View and Cube Relationships\n\n" + strings.Join(lines, "\n") + "\n"
}
