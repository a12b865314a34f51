package corpus

import (
	"fmt"
	"strings"

	"github.com/verdantlab/schemaloom/pkg/schema"
)

// catalogKeywords mark the dimensions of the semantic catalog that carry
// relationship or cross-entity context and are worth surfacing.
var catalogKeywords = []string{"join", "relationship", "cube_", "view_"}

func isCatalogKeyDimension(name string) bool {
	for _, keyword := range catalogKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// DescribeCatalog renders the semantic catalog: the singleton view acting
// as a metadata registry over all other entities. Only its relationship
// and context dimensions are listed.
func DescribeCatalog(catalog schema.Entity) string {
	if catalog.Name == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("# Semantic Catalog - The Metadata Hub\n\n")
	b.WriteString("The 'semantic_catalog' is a special view that acts as a metadata registry for the entire data schema. ")
	b.WriteString("It provides a complete picture of all available semantic views, cubes, and their relationships.\n\n")
	b.WriteString("## Key Metadata Dimensions in the Catalog:\n\n")

	for _, dim := range catalog.Dimensions {
		if !isCatalogKeyDimension(dim.Name) {
			continue
		}
		name := valueOr(dim.Name, defaultUnknown)
		fmt.Fprintf(
			&b,
			"- **%s (`%s`)**: %s\n",
			dim.Title,
			name,
			valueOr(dim.Description, defaultViewDescription),
		)
	}

	return b.String()
}
