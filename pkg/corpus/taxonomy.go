package corpus

import (
	"fmt"
	"strings"

	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/schema"
)

// RenderTaxonomy walks the fixed organization → division → business unit →
// subdivision → functional area/view hierarchy and renders it as prose.
// Each level emits a heading and a topic sentence naming its parent, so
// the nesting stays visible in the flattened text. The three flat
// registries (classifications, relationships, metadata counts) follow,
// each emitted only when its source mapping is non-empty.
//
// Taxonomy maps are iterated in sorted key order for deterministic output.
func RenderTaxonomy(taxonomy schema.TaxonomyGraph) string {
	if taxonomy.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("# Business Hierarchy\n\n")
	b.WriteString("## Organizational Structure\n\n")

	orgName := valueOr(taxonomy.Organization.Name, "Unknown")
	orgCode := valueOr(taxonomy.Organization.Code, "N/A")
	fmt.Fprintf(&b, "The **%s** is the top-level organization. Its organization code is %s.\n\n", orgName, orgCode)

	division := taxonomy.Hierarchy.Division
	divName := valueOr(division.Name, "Unknown")
	fmt.Fprintf(&b, "### Division: %s\n\n", divName)
	fmt.Fprintf(&b, "The %s organization has a division called **%s**.\n\n", orgName, divName)

	for _, buName := range division.SortedBusinessUnits() {
		renderBusinessUnit(&b, divName, buName, division.BusinessUnits[buName])
	}

	renderClassifications(&b, taxonomy.ViewClassifications)
	renderRelationshipRegistry(&b, taxonomy.ViewRelationships)
	renderMetadataSummary(&b, taxonomy.Metadata)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderBusinessUnit(b *strings.Builder, divName, buName string, bu schema.BusinessUnit) {
	fmt.Fprintf(b, "#### Business Unit: %s\n\n", buName)
	fmt.Fprintf(b, "The %s division contains the **%s** business unit.\n\n", divName, buName)
	fmt.Fprintf(
		b,
		"This business unit is known as '%s' and is used for: %s\n\n",
		valueOr(bu.DisplayName, "Unknown"),
		sentenceCase(valueOr(bu.Description, "Unknown")),
	)

	for _, subName := range bu.SortedSubdivisions() {
		renderSubdivision(b, buName, subName, bu.Subdivisions[subName])
	}
}

func renderSubdivision(b *strings.Builder, buName, subName string, sub schema.Subdivision) {
	fmt.Fprintf(b, "##### Subdivision: %s\n\n", subName)
	fmt.Fprintf(
		b,
		"The %s business unit has a **%s** subdivision, used for %s\n\n",
		buName,
		subName,
		sentenceCase(valueOr(sub.Description, "N/A")),
	)

	if len(sub.FunctionalAreas) > 0 {
		b.WriteString("**Functional Areas:**\n")
		for _, area := range sub.FunctionalAreas {
			displayName := valueOr(area.DisplayName, area.Name)
			fmt.Fprintf(b, "- %s: %s\n", displayName, sentenceCase(area.Description))
		}
		b.WriteString("\n")
	}

	if len(sub.Views) > 0 {
		b.WriteString("**Views:**\n")
		for _, view := range sub.Views {
			fmt.Fprintf(
				b,
				"- **%s**: This is a %s view belonging to the %s functional area. It includes tags such as %s.\n",
				view.Name,
				view.Type,
				util.Humanize(view.FunctionalArea),
				util.JoinOrDefault(view.Tags, "no associated tags"),
			)
		}
		b.WriteString("\n")
	}
}

func renderClassifications(b *strings.Builder, classifications map[string]schema.Classification) {
	if len(classifications) == 0 {
		return
	}

	b.WriteString("### View Classifications\n\n")
	b.WriteString("The business unit includes a set of classified views. ")
	b.WriteString("Each classification describes the purpose of the view, the data domains it covers, ")
	b.WriteString("its primary users, and how frequently its data is updated.\n\n")

	for _, name := range schema.SortedKeys(classifications) {
		vc := classifications[name]
		fmt.Fprintf(
			b,
			"- **%s**: This classification is used for %s. It covers data domains such as %s. The primary users of this view include %s. The data for this classification is updated on a %s basis.\n",
			name,
			valueOr(vc.Purpose, "No purpose provided"),
			util.JoinOrDefault(vc.DataDomains, "no data domains"),
			util.JoinOrDefault(vc.PrimaryUsers, "no defined users"),
			valueOr(vc.UpdateFrequency, "unknown frequency"),
		)
	}
	b.WriteString("\n")
}

func renderRelationshipRegistry(b *strings.Builder, relationships map[string]schema.Relationship) {
	if len(relationships) == 0 {
		return
	}

	b.WriteString("### View Relationships\n\n")
	b.WriteString("This section describes how different views are connected to one another. ")
	b.WriteString("Each entry lists related views, and when available, the shared measures, ")
	b.WriteString("shared dimensions, or special relationship types that define how the views ")
	b.WriteString("interact within the data ecosystem.\n\n")

	for _, viewName := range schema.SortedKeys(relationships) {
		vr := relationships[viewName]
		fmt.Fprintf(b, "- **%s**:\n", viewName)
		fmt.Fprintf(b, "  - Related views: %s.\n", util.JoinOrDefault(vr.RelatedViews, "no directly related views"))

		if len(vr.SharedMeasures) > 0 {
			fmt.Fprintf(b, "  - Shared measures: %s.\n", strings.Join(vr.SharedMeasures, ", "))
		}
		if len(vr.SharedDimensions) > 0 {
			fmt.Fprintf(b, "  - Shared dimensions: %s.\n", strings.Join(vr.SharedDimensions, ", "))
		}
		if vr.RelationshipType != "" {
			fmt.Fprintf(b, "  - Relationship type: %s.\n", vr.RelationshipType)
		}

		b.WriteString("\n")
	}
}

func renderMetadataSummary(b *strings.Builder, metadata schema.TaxonomyMetadata) {
	if metadata.IsZero() {
		return
	}

	b.WriteString("### Metadata Summary\n\n")
	b.WriteString("The following metadata provides a high-level overview of the structure and ")
	b.WriteString("composition of this business unit, including counts of views, view types, ")
	b.WriteString("business units, subdivisions, and functional areas.\n\n")

	var viewTypeLines []string
	for _, name := range schema.SortedKeys(metadata.ViewTypes) {
		viewTypeLines = append(viewTypeLines, fmt.Sprintf("    - %s: %d", util.Humanize(name), metadata.ViewTypes[name]))
	}
	viewTypeText := "    - No detailed view types listed"
	if len(viewTypeLines) > 0 {
		viewTypeText = strings.Join(viewTypeLines, "\n")
	}

	fmt.Fprintf(b, "- **Total Views:** %d\n", metadata.TotalViews)
	fmt.Fprintf(b, "- **View Types:**\n%s\n", viewTypeText)
	fmt.Fprintf(b, "- **Business Units:** %d\n", metadata.BusinessUnits)
	fmt.Fprintf(b, "- **Subdivisions:** %d\n", metadata.Subdivisions)
	fmt.Fprintf(b, "- **Functional Areas:** %d\n\n", metadata.FunctionalAreas)
}
