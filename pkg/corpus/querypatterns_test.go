package corpus

import (
	"strings"
	"testing"

	"github.com/verdantlab/schemaloom/pkg/schema"
)

func TestRenderQueryPatterns(t *testing.T) {
	entities := []schema.Entity{
		{
			Name:        "orders",
			Title:       "Orders",
			Description: "tracking customer orders",
			Measures: []schema.Measure{
				{Name: "count", Title: "Order Count"},
				{Name: "total_amount", Title: "Total Amount"},
			},
			Dimensions: []schema.Dimension{
				{Name: "id", Title: "ID", Type: "number", PrimaryKey: true},
				{Name: "status", Title: "Status", Type: "string"},
			},
		},
	}

	got := RenderQueryPatterns(entities, DefaultQueryPatternLimit)

	wantFragments := []string{
		"# Example Questions and Answers",
		"**Question:** What is the purpose of the 'Orders'?",
		"**Answer:** The 'Orders' (technical name: `orders`) is used for: tracking customer orders",
		"**Question:** What metrics are available in 'Orders'?",
		"**Answer:** The 'Orders' provides the following metrics: 'Order Count', 'Total Amount'.",
		"**Question:** What measures are in orders?",
		"**Answer:** The orders cube has 2 measures: count, total_amount.",
		"**Question:** What is the data type of 'ID' in the 'Orders' view?",
		"**Answer:** In 'Orders', the data type for 'ID' is `number`.",
		"**Question:** Where can I find the 'Order Count' metric?",
		"**Answer:** The metric 'Order Count' is located in the **Orders** cube/view.",
		"**Question:** What is the primary key of orders?",
		"**Answer:** The primary key is id, which is a number dimension.",
	}
	for _, want := range wantFragments {
		if !strings.Contains(got, want) {
			t.Errorf("RenderQueryPatterns() missing %q", want)
		}
	}
}

func TestRenderQueryPatternsPartialEntity(t *testing.T) {
	// No description and no primary key: those pairs are skipped while the
	// field-driven pairs still render.
	entities := []schema.Entity{{
		Name:     "shipments",
		Measures: []schema.Measure{{Name: "count"}},
	}}

	got := RenderQueryPatterns(entities, DefaultQueryPatternLimit)
	if strings.Contains(got, "purpose of") {
		t.Errorf("RenderQueryPatterns() rendered a purpose pair without a description:\n%s", got)
	}
	if strings.Contains(got, "primary key") {
		t.Errorf("RenderQueryPatterns() rendered a primary key pair without one:\n%s", got)
	}
	if !strings.Contains(got, "The shipments cube has 1 measures: count.") {
		t.Errorf("RenderQueryPatterns() missing measure pair:\n%s", got)
	}
}

func TestRenderQueryPatternsLimit(t *testing.T) {
	entities := make([]schema.Entity, 30)
	for i := range entities {
		entities[i] = schema.Entity{
			Name:        "cube_" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Description: "a description",
		}
	}

	got := RenderQueryPatterns(entities, 20)
	if count := strings.Count(got, "**Question:** What is the purpose of"); count != 20 {
		t.Errorf("RenderQueryPatterns() rendered %d purpose pairs, want 20", count)
	}

	// A limit beyond the entity count must not panic or truncate.
	got = RenderQueryPatterns(entities[:3], 20)
	if count := strings.Count(got, "**Question:** What is the purpose of"); count != 3 {
		t.Errorf("RenderQueryPatterns() rendered %d purpose pairs, want 3", count)
	}
}

func TestRenderQueryPatternsEmpty(t *testing.T) {
	if got := RenderQueryPatterns(nil, DefaultQueryPatternLimit); got != "" {
		t.Errorf("RenderQueryPatterns(nil) = %q, want empty", got)
	}
	// Entities producing no pairs at all yield no header either.
	if got := RenderQueryPatterns([]schema.Entity{{Name: "bare"}}, 20); got != "" {
		t.Errorf("RenderQueryPatterns() = %q, want empty", got)
	}
}
