package corpus

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/schema"
)

const (
	// MeasuresBriefHeading and DimensionsBriefHeading are the section
	// titles of the per-field summary lists in a cube description.
	MeasuresBriefHeading   = "## Measures (Brief Summary)"
	DimensionsBriefHeading = "## Dimensions (Brief Summary)"

	defaultCubeDescription = "used for data analysis."
	defaultViewDescription = "No description available."
)

func capitalize(value string) string {
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// DescribeCube renders a data cube into a structured block: a header with
// its core properties, brief one-line summaries of every measure and
// dimension, then the full field paragraphs. Cubes are rendered
// unconditionally each time they are requested.
func DescribeCube(cube schema.Entity) string {
	name := valueOr(cube.Name, "UnknownCube")
	title := valueOr(cube.Title, name)
	cubeType := valueOr(cube.Type, schema.EntityTypeCube)
	description := valueOr(cube.Description, defaultCubeDescription)

	var b strings.Builder
	fmt.Fprintf(&b, "### Cube: %s\n\n", title)
	fmt.Fprintf(&b, "The **%s** cube is a data structure described as: %s\n\n", title, sentenceCase(description))
	b.WriteString("It has the following properties:\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", name)
	fmt.Fprintf(&b, "- **Title:** %s\n", title)
	fmt.Fprintf(&b, "- **Type:** %s\n", capitalize(cubeType))
	fmt.Fprintf(&b, "- **Visibility:** %s, %s\n", util.VisibilityWord(cube.IsVisible), util.PublicityWord(cube.Public))
	fmt.Fprintf(&b, "- **Connected Components:** %d\n\n", len(cube.ConnectedComponents))

	b.WriteString(MeasuresBriefHeading + "\n\n")
	if len(cube.Measures) > 0 {
		fmt.Fprintf(&b, "This cube contains **%d measures**:\n\n", len(cube.Measures))
		for _, m := range cube.Measures {
			mName := valueOr(m.Name, defaultUnknown)
			fmt.Fprintf(
				&b,
				"- **%s**: A **%s** measure with the following description: %s This measure has the title %q and is of type %s.\n",
				mName,
				valueOr(m.AggType, "aggregation"),
				sentenceCase(valueOr(strings.TrimSpace(m.Description), DefaultFieldDescription)),
				valueOr(m.Title, mName),
				valueOr(m.Type, defaultUnknown),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString(DimensionsBriefHeading + "\n\n")
	if len(cube.Dimensions) > 0 {
		fmt.Fprintf(&b, "This cube contains **%d dimensions**:\n\n", len(cube.Dimensions))
		for _, d := range cube.Dimensions {
			dName := valueOr(d.Name, defaultUnknown)
			pkNote := ""
			if d.PrimaryKey {
				pkNote = " that serves as the primary key"
			}
			fmt.Fprintf(
				&b,
				"- **%s**: A **%s** dimension%s. This dimension has the title %q and is %s.\n",
				dName,
				valueOr(d.Type, defaultUnknown),
				pkNote,
				valueOr(d.Title, dName),
				util.VisibilityWord(d.IsVisible),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Detailed Measure Descriptions\n\n")
	b.WriteString("Below is a detailed breakdown of each measure, including type, aggregation behavior, visibility, titles, and additional metadata:\n\n")
	for _, m := range cube.Measures {
		b.WriteString(DescribeMeasure(name, m))
		b.WriteString("\n")
	}

	b.WriteString("## Detailed Dimension Descriptions\n\n")
	b.WriteString("The following section provides detailed information for each dimension, including type, primary key status, visibility, titles, and other metadata:\n\n")
	for _, d := range cube.Dimensions {
		b.WriteString(DescribeDimension(name, d))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// DescribeView renders a semantic view, consulting the taxonomy for a
// business-context sentence. The seen set is threaded in by the caller:
// a view already present renders as an empty string, otherwise it is
// marked seen before the text is returned. This keeps a view from being
// counted twice when referenced from multiple code paths.
func DescribeView(view schema.Entity, taxonomy schema.TaxonomyGraph, seen map[string]struct{}) string {
	if view.Name == "" {
		return ""
	}
	if _, ok := seen[view.Name]; ok {
		return ""
	}
	seen[view.Name] = struct{}{}

	var b strings.Builder
	fmt.Fprintf(&b, "# Semantic View: %s\n\n", view.DisplayTitle())
	fmt.Fprintf(&b, "**Technical Name**: `%s`\n\n", view.Name)
	fmt.Fprintf(&b, "**Description**: %s\n\n", valueOr(view.Description, defaultViewDescription))

	if ctx, ok := taxonomy.FindViewContext(view.Name); ok {
		fmt.Fprintf(
			&b,
			"**Business Context**: Belongs to the '%s' subdivision and is used for '%s'.\n\n",
			valueOr(ctx.SubdivisionName, ctx.Subdivision),
			ctx.FunctionalArea,
		)
	}

	if len(view.Measures) > 0 {
		fmt.Fprintf(&b, "### Key Metrics (Measures) in %s:\n", view.Name)
		for _, m := range view.Measures {
			fmt.Fprintf(&b, "- **%s** (`%s`): A `%s` aggregation.\n", m.DisplayTitle(), m.Name, m.AggType)
		}
	}

	if len(view.Dimensions) > 0 {
		fmt.Fprintf(&b, "\n### Attributes (Dimensions) in %s:\n", view.Name)
		for _, d := range view.Dimensions {
			fmt.Fprintf(&b, "- **%s** (`%s`): Data type is `%s`.\n", d.DisplayTitle(), d.Name, d.Type)
		}
	}

	fmt.Fprintf(&b, "\n#### Detailed Fields for %s:\n", view.Name)
	for _, m := range view.Measures {
		b.WriteString(DescribeMeasure(view.Name, m))
		b.WriteString("\n")
	}
	for _, d := range view.Dimensions {
		b.WriteString(DescribeDimension(view.Name, d))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
