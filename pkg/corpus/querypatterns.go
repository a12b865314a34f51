package corpus

import (
	"fmt"
	"strings"

	"github.com/verdantlab/schemaloom/pkg/schema"
)

// DefaultQueryPatternLimit bounds how many entities contribute synthetic
// question/answer pairs.
const DefaultQueryPatternLimit = 20

// RenderQueryPatterns synthesizes instruction-style question/answer pairs
// from the structured fields of the first limit entities in document
// order. Each pair is generated independently: a missing producing field
// omits that pair without blocking the rest.
func RenderQueryPatterns(entities []schema.Entity, limit int) string {
	if limit <= 0 {
		limit = DefaultQueryPatternLimit
	}
	if limit > len(entities) {
		limit = len(entities)
	}

	var b strings.Builder
	for _, entity := range entities[:limit] {
		renderEntityQueryPatterns(&b, entity)
	}
	if b.Len() == 0 {
		return ""
	}
	return "# Example Questions and Answers\n\n" + b.String()
}

func renderEntityQueryPatterns(b *strings.Builder, entity schema.Entity) {
	name := valueOr(entity.Name, "Unknown")
	title := valueOr(entity.Title, name)

	if entity.Description != "" {
		fmt.Fprintf(b, "**Question:** What is the purpose of the '%s'?\n", title)
		fmt.Fprintf(b, "**Answer:** The '%s' (technical name: `%s`) is used for: %s\n\n", title, name, entity.Description)
	}

	if len(entity.Measures) > 0 {
		measureTitles := make([]string, 0, len(entity.Measures))
		measureNames := make([]string, 0, len(entity.Measures))
		for _, m := range entity.Measures {
			measureTitles = append(measureTitles, fmt.Sprintf("'%s'", m.DisplayTitle()))
			measureNames = append(measureNames, valueOr(m.Name, defaultUnknown))
		}

		fmt.Fprintf(b, "**Question:** What metrics are available in '%s'?\n", title)
		fmt.Fprintf(b, "**Answer:** The '%s' provides the following metrics: %s.\n\n", title, strings.Join(measureTitles, ", "))

		fmt.Fprintf(b, "**Question:** What measures are in %s?\n", name)
		fmt.Fprintf(b, "**Answer:** The %s cube has %d measures: %s.\n\n", name, len(entity.Measures), strings.Join(measureNames, ", "))
	}

	if len(entity.Dimensions) > 0 {
		dim := entity.Dimensions[0]
		dimTitle := dim.DisplayTitle()
		fmt.Fprintf(b, "**Question:** What is the data type of '%s' in the '%s' view?\n", dimTitle, title)
		fmt.Fprintf(b, "**Answer:** In '%s', the data type for '%s' is `%s`.\n\n", title, dimTitle, valueOr(dim.Type, defaultUnknown))
	}

	if len(entity.Measures) > 0 {
		measureTitle := entity.Measures[0].DisplayTitle()
		fmt.Fprintf(b, "**Question:** Where can I find the '%s' metric?\n", measureTitle)
		fmt.Fprintf(b, "**Answer:** The metric '%s' is located in the **%s** cube/view.\n\n", measureTitle, title)
	}

	if pk, ok := entity.PrimaryKeyDimension(); ok {
		fmt.Fprintf(b, "**Question:** What is the primary key of %s?\n", name)
		fmt.Fprintf(b, "**Answer:** The primary key is %s, which is a %s dimension.\n\n", pk.Name, valueOr(pk.Type, defaultUnknown))
	}
}
