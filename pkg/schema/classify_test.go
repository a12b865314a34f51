package schema

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	graph := MetadataGraph{Cubes: []Entity{
		{Name: CatalogEntityName, Type: EntityTypeView},
		{Name: "sales_overview", Type: EntityTypeView},
		{Name: "orders", Type: EntityTypeCube},
		{Name: "mystery", Type: "something_else"},
		{Name: "untyped"},
	}}

	p := Classify(graph)

	if got := entityNames(p.Catalog); !reflect.DeepEqual(got, []string{CatalogEntityName}) {
		t.Errorf("Catalog = %v", got)
	}
	if got := entityNames(p.Views); !reflect.DeepEqual(got, []string{"sales_overview"}) {
		t.Errorf("Views = %v", got)
	}
	// Unknown and missing types fall through to cubes so the partition
	// stays total.
	if got := entityNames(p.Cubes); !reflect.DeepEqual(got, []string{"orders", "mystery", "untyped"}) {
		t.Errorf("Cubes = %v", got)
	}

	total := len(p.Catalog) + len(p.Views) + len(p.Cubes)
	if total != len(graph.Cubes) {
		t.Errorf("partition has %d entities, want %d", total, len(graph.Cubes))
	}
}

func TestClassifyCatalogNameBeatsType(t *testing.T) {
	// Name equality wins even when the type says cube.
	graph := MetadataGraph{Cubes: []Entity{
		{Name: CatalogEntityName, Type: EntityTypeCube},
	}}
	p := Classify(graph)
	if len(p.Catalog) != 1 || len(p.Cubes) != 0 {
		t.Errorf("Classify() = %+v, want the catalog entity in Catalog", p)
	}
}

func TestClassifyEmpty(t *testing.T) {
	p := Classify(MetadataGraph{})
	if len(p.Catalog)+len(p.Views)+len(p.Cubes) != 0 {
		t.Errorf("Classify() of empty graph = %+v", p)
	}
}

func entityNames(entities []Entity) []string {
	if len(entities) == 0 {
		return nil
	}
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	return names
}
