package schema

import (
	"reflect"
	"testing"
)

func TestFindViewContext(t *testing.T) {
	taxonomy := TaxonomyGraph{
		Hierarchy: Hierarchy{Division: Division{
			Name: "Commercial",
			BusinessUnits: map[string]BusinessUnit{
				"finance": {Subdivisions: map[string]Subdivision{
					"controlling": {
						DisplayName: "Controlling",
						Views:       []TaxonomyView{{Name: "budget_view", FunctionalArea: "budget_planning"}},
					},
				}},
				"sales": {Subdivisions: map[string]Subdivision{
					"reporting": {
						DisplayName: "Reporting",
						Views:       []TaxonomyView{{Name: "sales_overview", FunctionalArea: "revenue_tracking"}},
					},
				}},
			},
		}},
	}

	tests := []struct {
		name     string
		viewName string
		want     ViewContext
		wantOK   bool
	}{
		{
			name:     "found in sales",
			viewName: "sales_overview",
			want: ViewContext{
				BusinessUnit:    "sales",
				Subdivision:     "reporting",
				SubdivisionName: "Reporting",
				FunctionalArea:  "revenue_tracking",
			},
			wantOK: true,
		},
		{
			name:     "found in finance",
			viewName: "budget_view",
			want: ViewContext{
				BusinessUnit:    "finance",
				Subdivision:     "controlling",
				SubdivisionName: "Controlling",
				FunctionalArea:  "budget_planning",
			},
			wantOK: true,
		},
		{
			name:     "not found",
			viewName: "nonexistent",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := taxonomy.FindViewContext(tt.viewName)
			if ok != tt.wantOK {
				t.Fatalf("FindViewContext() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindViewContext() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindViewContextFirstMatchWins(t *testing.T) {
	// The same view name appears under two business units; sorted key
	// order makes "alpha" the stable winner.
	taxonomy := TaxonomyGraph{
		Hierarchy: Hierarchy{Division: Division{
			BusinessUnits: map[string]BusinessUnit{
				"beta": {Subdivisions: map[string]Subdivision{
					"sub": {Views: []TaxonomyView{{Name: "shared", FunctionalArea: "late"}}},
				}},
				"alpha": {Subdivisions: map[string]Subdivision{
					"sub": {Views: []TaxonomyView{{Name: "shared", FunctionalArea: "early"}}},
				}},
			},
		}},
	}

	for i := 0; i < 20; i++ {
		ctx, ok := taxonomy.FindViewContext("shared")
		if !ok {
			t.Fatal("FindViewContext() did not find the view")
		}
		if ctx.BusinessUnit != "alpha" || ctx.FunctionalArea != "early" {
			t.Fatalf("run %d: FindViewContext() = %+v, want the alpha match", i, ctx)
		}
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 1, "a": 2, "b": 3}
	if got, want := SortedKeys(m), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}
}

func TestTaxonomyGraphIsEmpty(t *testing.T) {
	if !(TaxonomyGraph{}).IsEmpty() {
		t.Error("IsEmpty() = false for the zero value")
	}
	if (TaxonomyGraph{Organization: Organization{Name: "x"}}).IsEmpty() {
		t.Error("IsEmpty() = true with an organization set")
	}
	if (TaxonomyGraph{Metadata: TaxonomyMetadata{TotalViews: 1}}).IsEmpty() {
		t.Error("IsEmpty() = true with metadata set")
	}
}
