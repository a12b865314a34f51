package corpus

import (
	"fmt"
	"strings"

	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/schema"
)

const (
	// DefaultFieldDescription is rendered when a field carries no description.
	DefaultFieldDescription = "No description provided."

	defaultUnknown = "unknown"
)

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func sentenceCase(value string) string {
	return strings.TrimSuffix(value, ".") + "."
}

// DescribeMeasure renders one measure of the named entity into a
// fixed-order paragraph. The output is a pure function of its inputs:
// rendering the same record twice yields byte-identical text.
func DescribeMeasure(entityName string, m schema.Measure) string {
	name := valueOr(m.Name, defaultUnknown)
	title := valueOr(m.Title, name)
	mType := valueOr(m.Type, defaultUnknown)
	agg := valueOr(m.AggType, defaultUnknown)
	description := valueOr(m.Description, DefaultFieldDescription)

	lines := []string{
		fmt.Sprintf("The %s is a measure in the %s cube.", name, entityName),
		fmt.Sprintf("It is a %s aggregation of type %s.", agg, mType),
		fmt.Sprintf("Its full name is %s.%s.", entityName, name),
		fmt.Sprintf("Its title is %q.", title),
	}

	if m.ShortTitle != "" {
		lines = append(lines, fmt.Sprintf("Its short title is %q.", m.ShortTitle))
	}

	lines = append(lines,
		fmt.Sprintf("Description: %s", sentenceCase(description)),
		fmt.Sprintf(
			"This measure is %s and %s.",
			util.VisibilityWord(m.IsVisible),
			util.PublicityWord(m.Public),
		),
	)

	if m.Cumulative {
		lines = append(lines, "It is cumulative.")
	} else {
		lines = append(lines, "It is not cumulative.")
	}

	return strings.Join(lines, "\n") + "\n"
}

// DescribeDimension renders one dimension of the named entity into a
// fixed-order paragraph, closing with primary-key status, filter
// suggestion, and the optional alias-member and sub-entity notes.
func DescribeDimension(entityName string, d schema.Dimension) string {
	name := valueOr(d.Name, defaultUnknown)
	title := valueOr(d.Title, name)
	dType := valueOr(d.Type, defaultUnknown)
	description := valueOr(d.Description, DefaultFieldDescription)

	lines := []string{
		fmt.Sprintf("The %s is a dimension in the %s cube.", name, entityName),
		fmt.Sprintf("It is of type %s.", dType),
		fmt.Sprintf("Its full name is %s.%s.", entityName, name),
		fmt.Sprintf("Its title is %q.", title),
		fmt.Sprintf("Description: %s", sentenceCase(description)),
		fmt.Sprintf(
			"This dimension is %s and %s.",
			util.VisibilityWord(d.IsVisible),
			util.PublicityWord(d.Public),
		),
	}

	if d.PrimaryKey {
		lines = append(lines, "It is a primary key.")
	} else {
		lines = append(lines, "It is not a primary key.")
	}

	if d.SuggestFilterValues {
		lines = append(lines, "It suggests filter values.")
	} else {
		lines = append(lines, "It does not suggest filter values.")
	}

	if d.AliasMember != "" {
		lines = append(lines, fmt.Sprintf("It has an alias member '%s', useful for joining across cubes.", d.AliasMember))
	}
	if d.Meta.SubEntity != nil {
		lines = append(lines, fmt.Sprintf("It belongs to the sub-entity '%s'.", *d.Meta.SubEntity))
	}

	return strings.Join(lines, "\n") + "\n"
}
