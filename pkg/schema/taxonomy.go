package schema

import "sort"

// TaxonomyGraph is the business taxonomy document: an organization →
// division → business-unit → subdivision hierarchy plus three flat
// registries keyed by view name.
type TaxonomyGraph struct {
	Organization        Organization              `json:"organization"`
	Hierarchy           Hierarchy                 `json:"hierarchy"`
	ViewClassifications map[string]Classification `json:"view_classifications"`
	ViewRelationships   map[string]Relationship   `json:"view_relationships"`
	Metadata            TaxonomyMetadata          `json:"metadata"`
}

// IsEmpty reports whether the taxonomy document carries no content at all,
// which is the degraded state after a failed load.
func (t TaxonomyGraph) IsEmpty() bool {
	return t.Organization == Organization{} &&
		t.Hierarchy.Division.Name == "" &&
		len(t.Hierarchy.Division.BusinessUnits) == 0 &&
		len(t.ViewClassifications) == 0 &&
		len(t.ViewRelationships) == 0 &&
		t.Metadata.IsZero()
}

// Organization names the top-level organization.
type Organization struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Hierarchy holds the single division the taxonomy currently describes.
type Hierarchy struct {
	Division Division `json:"division"`
}

// Division groups business units under a named division.
type Division struct {
	Name          string                  `json:"name"`
	BusinessUnits map[string]BusinessUnit `json:"business_units"`
}

// BusinessUnit is a named unit within the division, broken into subdivisions.
type BusinessUnit struct {
	DisplayName  string                 `json:"display_name"`
	Description  string                 `json:"description"`
	Subdivisions map[string]Subdivision `json:"subdivisions"`
}

// Subdivision groups functional areas and the views that belong to them.
// The views list cross-references Entity.Name but is not validated against
// the metadata document; dangling references are skipped when searched.
type Subdivision struct {
	DisplayName     string           `json:"display_name"`
	Description     string           `json:"description"`
	FunctionalAreas []FunctionalArea `json:"functional_areas"`
	Views           []TaxonomyView   `json:"views"`
}

// FunctionalArea is a named activity area within a subdivision.
type FunctionalArea struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// TaxonomyView is a view entry inside a subdivision.
type TaxonomyView struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	FunctionalArea string   `json:"functional_area"`
	Tags           []string `json:"tags"`
}

// Classification describes the purpose and audience of a view.
type Classification struct {
	Purpose         string   `json:"purpose"`
	DataDomains     []string `json:"data_domains"`
	PrimaryUsers    []string `json:"primary_users"`
	UpdateFrequency string   `json:"update_frequency"`
}

// Relationship records how one view relates to others.
type Relationship struct {
	RelatedViews     []string `json:"related_views"`
	SharedMeasures   []string `json:"shared_measures"`
	SharedDimensions []string `json:"shared_dimensions"`
	RelationshipType string   `json:"relationship_type"`
}

// TaxonomyMetadata summarizes the taxonomy's composition.
type TaxonomyMetadata struct {
	TotalViews      int            `json:"total_views"`
	ViewTypes       map[string]int `json:"view_types"`
	BusinessUnits   int            `json:"business_units"`
	Subdivisions    int            `json:"subdivisions"`
	FunctionalAreas int            `json:"functional_areas"`
}

// IsZero reports whether the metadata summary has no content.
func (m TaxonomyMetadata) IsZero() bool {
	return m.TotalViews == 0 &&
		len(m.ViewTypes) == 0 &&
		m.BusinessUnits == 0 &&
		m.Subdivisions == 0 &&
		m.FunctionalAreas == 0
}

// ViewContext locates a view inside the taxonomy hierarchy.
type ViewContext struct {
	BusinessUnit    string
	Subdivision     string
	SubdivisionName string
	FunctionalArea  string
}

// FindViewContext searches the business-unit/subdivision hierarchy for a
// view entry with the given name and returns its location. Maps are walked
// in sorted key order so results are deterministic; the first match wins.
func (t TaxonomyGraph) FindViewContext(viewName string) (ViewContext, bool) {
	division := t.Hierarchy.Division
	for _, buName := range sortedKeys(division.BusinessUnits) {
		bu := division.BusinessUnits[buName]
		for _, subName := range sortedKeys(bu.Subdivisions) {
			sub := bu.Subdivisions[subName]
			for _, view := range sub.Views {
				if view.Name == viewName {
					return ViewContext{
						BusinessUnit:    buName,
						Subdivision:     subName,
						SubdivisionName: sub.DisplayName,
						FunctionalArea:  view.FunctionalArea,
					}, true
				}
			}
		}
	}
	return ViewContext{}, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedBusinessUnits returns the division's business unit names in sorted order.
func (d Division) SortedBusinessUnits() []string {
	return sortedKeys(d.BusinessUnits)
}

// SortedSubdivisions returns the business unit's subdivision names in sorted order.
func (b BusinessUnit) SortedSubdivisions() []string {
	return sortedKeys(b.Subdivisions)
}

// SortedKeys exposes deterministic iteration order for the flat registries.
func SortedKeys[V any](m map[string]V) []string {
	return sortedKeys(m)
}
