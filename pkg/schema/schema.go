package schema

// MetadataGraph is the top-level metadata export of the semantic layer.
// It holds every entity (cubes and views alike) in document order under
// the "cubes" key.
//
// The graph is a read-only view into the loaded JSON document; nothing in
// this package mutates it after loading.
type MetadataGraph struct {
	Cubes []Entity `json:"cubes"`
}

// Entity is a cube or a semantic view: a named collection of measures and
// dimensions. Entity names are globally unique across the metadata
// document and serve as join keys into the taxonomy.
type Entity struct {
	Name                string      `json:"name"`
	Title               string      `json:"title"`
	Type                string      `json:"type"`
	Description         string      `json:"description"`
	IsVisible           bool        `json:"isVisible"`
	Public              bool        `json:"public"`
	ConnectedComponents []int       `json:"connectedComponents"`
	Measures            []Measure   `json:"measures"`
	Dimensions          []Dimension `json:"dimensions"`
}

// DisplayTitle returns the entity title, falling back to the technical name.
func (e Entity) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// PrimaryKeyDimension returns the first dimension flagged as primary key.
// Entities are expected to carry at most one, but this is not enforced;
// with several flagged, the first in document order wins.
func (e Entity) PrimaryKeyDimension() (Dimension, bool) {
	for _, d := range e.Dimensions {
		if d.PrimaryKey {
			return d, true
		}
	}
	return Dimension{}, false
}

// Measure is an aggregatable numeric field on an entity.
type Measure struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	ShortTitle  string `json:"shortTitle"`
	Description string `json:"description"`
	Type        string `json:"type"`
	AggType     string `json:"aggType"`
	IsVisible   bool   `json:"isVisible"`
	Public      bool   `json:"public"`
	Cumulative  bool   `json:"cumulative"`
}

// DisplayTitle returns the measure title, falling back to the technical name.
func (m Measure) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// Dimension is a categorical or key field on an entity.
type Dimension struct {
	Name                string        `json:"name"`
	Title               string        `json:"title"`
	Type                string        `json:"type"`
	Description         string        `json:"description"`
	PrimaryKey          bool          `json:"primaryKey"`
	IsVisible           bool          `json:"isVisible"`
	Public              bool          `json:"public"`
	SuggestFilterValues bool          `json:"suggestFilterValues"`
	AliasMember         string        `json:"aliasMember"`
	Meta                DimensionMeta `json:"meta"`
}

// DisplayTitle returns the dimension title, falling back to the technical name.
func (d Dimension) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// DimensionMeta carries optional free-form metadata attached to a dimension.
type DimensionMeta struct {
	SubEntity *string `json:"subEntity"`
}
