package schema

import (
	"context"
	"fmt"
	"testing"

	"github.com/verdantlab/schemaloom/pkg/loader"
)

type memoryLoader struct {
	documents map[string][]byte
}

func (l *memoryLoader) GetDocument(_ context.Context, doc loader.Document) ([]byte, error) {
	content, ok := l.documents[doc.Path]
	if !ok {
		return nil, fmt.Errorf("no such document: %s", doc.Path)
	}
	return content, nil
}

func metadataDoc(content string) loader.Document {
	return loader.NewDocument(loader.NewDocumentParams{
		Kind: loader.DocumentKindMetadata,
		Path: "meta.json",
		Loader: &memoryLoader{documents: map[string][]byte{
			"meta.json": []byte(content),
		}},
	})
}

func TestLoadMetadata(t *testing.T) {
	doc := metadataDoc(`{
		"cubes": [
			{"name": "orders", "title": "Orders", "type": "cube",
			 "measures": [{"name": "count", "aggType": "count"}],
			 "dimensions": [{"name": "id", "primaryKey": true}]}
		]
	}`)

	graph, err := LoadMetadata(context.Background(), doc)
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if len(graph.Cubes) != 1 {
		t.Fatalf("LoadMetadata() loaded %d entities, want 1", len(graph.Cubes))
	}

	entity := graph.Cubes[0]
	if entity.Name != "orders" || entity.Title != "Orders" {
		t.Errorf("entity = %+v", entity)
	}
	if len(entity.Measures) != 1 || entity.Measures[0].AggType != "count" {
		t.Errorf("measures = %+v", entity.Measures)
	}
	pk, ok := entity.PrimaryKeyDimension()
	if !ok || pk.Name != "id" {
		t.Errorf("PrimaryKeyDimension() = %+v, %v", pk, ok)
	}
}

func TestLoadMetadataRepairsMalformedJSON(t *testing.T) {
	// Trailing comma is invalid JSON but repairable.
	doc := metadataDoc(`{"cubes": [{"name": "orders",},]}`)

	graph, err := LoadMetadata(context.Background(), doc)
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if len(graph.Cubes) != 1 || graph.Cubes[0].Name != "orders" {
		t.Errorf("LoadMetadata() = %+v", graph)
	}
}

func TestLoadMetadataUnrepairable(t *testing.T) {
	doc := metadataDoc(`{"cubes": "definitely not an array"}`)

	if _, err := LoadMetadata(context.Background(), doc); err == nil {
		t.Error("LoadMetadata() expected an error for mistyped JSON")
	}
}

func TestLoadMetadataMissingDocument(t *testing.T) {
	doc := loader.NewDocument(loader.NewDocumentParams{
		Kind:   loader.DocumentKindMetadata,
		Path:   "missing.json",
		Loader: &memoryLoader{documents: map[string][]byte{}},
	})

	if _, err := LoadMetadata(context.Background(), doc); err == nil {
		t.Error("LoadMetadata() expected an error for a missing document")
	}
}

func TestLoadTaxonomy(t *testing.T) {
	doc := loader.NewDocument(loader.NewDocumentParams{
		Kind: loader.DocumentKindTaxonomy,
		Path: "taxonomy.json",
		Loader: &memoryLoader{documents: map[string][]byte{
			"taxonomy.json": []byte(`{
				"organization": {"name": "Verdant Labs", "code": "VL-01"},
				"hierarchy": {"division": {"name": "Commercial", "business_units": {
					"sales": {"display_name": "Sales", "subdivisions": {}}
				}}}
			}`),
		}},
	})

	graph, err := LoadTaxonomy(context.Background(), doc)
	if err != nil {
		t.Fatalf("LoadTaxonomy() error = %v", err)
	}
	if graph.Organization.Name != "Verdant Labs" {
		t.Errorf("organization = %+v", graph.Organization)
	}
	if graph.IsEmpty() {
		t.Error("IsEmpty() = true for a populated taxonomy")
	}
	if _, ok := graph.Hierarchy.Division.BusinessUnits["sales"]; !ok {
		t.Errorf("business units = %+v", graph.Hierarchy.Division.BusinessUnits)
	}
}
