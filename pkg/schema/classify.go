package schema

// CatalogEntityName is the reserved name of the singleton metadata
// registry view.
const CatalogEntityName = "semantic_catalog"

// EntityTypeView and EntityTypeCube are the two entity types the metadata
// export distinguishes.
const (
	EntityTypeView = "view"
	EntityTypeCube = "cube"
)

// Partition is the result of classifying every entity in a metadata graph
// into exactly one of three disjoint groups. Name equality is checked
// before type, so an entity named semantic_catalog lands in Catalog no
// matter what its type says.
type Partition struct {
	Catalog []Entity
	Views   []Entity
	Cubes   []Entity
}

// Classify performs a single pass over the metadata graph and partitions
// its entities. The partition is total: entities with an unrecognized type
// are treated as cubes so nothing is silently dropped.
func Classify(graph MetadataGraph) Partition {
	var p Partition
	for _, entity := range graph.Cubes {
		switch {
		case entity.Name == CatalogEntityName:
			p.Catalog = append(p.Catalog, entity)
		case entity.Type == EntityTypeView:
			p.Views = append(p.Views, entity)
		default:
			p.Cubes = append(p.Cubes, entity)
		}
	}
	return p
}
