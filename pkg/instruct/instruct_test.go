package instruct

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/verdantlab/schemaloom/pkg/schema"
)

func TestGenerate(t *testing.T) {
	metadata := schema.MetadataGraph{Cubes: []schema.Entity{
		{
			Name:        "orders",
			Description: "tracking customer orders",
			Measures: []schema.Measure{
				{Name: "count"},
				{Name: "total_amount"},
			},
			Dimensions: []schema.Dimension{
				{Name: "id", Type: "number", PrimaryKey: true},
			},
		},
		{Name: "bare_cube"},
		{Title: "Nameless"},
	}}

	instructions := Generate(metadata)
	if len(instructions) != 3 {
		t.Fatalf("Generate() produced %d instructions, want 3", len(instructions))
	}

	for i, instruction := range instructions {
		if len(instruction.Messages) != 3 {
			t.Fatalf("instruction %d has %d messages, want 3", i, len(instruction.Messages))
		}
		wantRoles := []string{"system", "user", "assistant"}
		for j, message := range instruction.Messages {
			if message.Role != wantRoles[j] {
				t.Errorf("instruction %d message %d role = %q, want %q", i, j, message.Role, wantRoles[j])
			}
		}
		if instruction.Messages[0].Content != SystemPrompt {
			t.Errorf("instruction %d system prompt = %q", i, instruction.Messages[0].Content)
		}
	}

	wantPairs := []struct{ question, answer string }{
		{
			"What measures are in orders?",
			"The orders cube has 2 measures: count, total_amount.",
		},
		{
			"What is the primary key of orders?",
			"The primary key is id, which is a number dimension.",
		},
		{
			"What is orders used for?",
			"The orders cube is used for: tracking customer orders",
		},
	}
	for i, want := range wantPairs {
		if got := instructions[i].Messages[1].Content; got != want.question {
			t.Errorf("instruction %d question = %q, want %q", i, got, want.question)
		}
		if got := instructions[i].Messages[2].Content; got != want.answer {
			t.Errorf("instruction %d answer = %q, want %q", i, got, want.answer)
		}
	}
}

func TestGeneratePrimaryKeyWithoutType(t *testing.T) {
	metadata := schema.MetadataGraph{Cubes: []schema.Entity{{
		Name:       "orders",
		Dimensions: []schema.Dimension{{Name: "id", PrimaryKey: true}},
	}}}

	instructions := Generate(metadata)
	if len(instructions) != 1 {
		t.Fatalf("Generate() produced %d instructions, want 1", len(instructions))
	}
	if got, want := instructions[0].Messages[2].Content, "The primary key is id."; got != want {
		t.Errorf("answer = %q, want %q", got, want)
	}
}

func TestGenerateEmpty(t *testing.T) {
	if got := Generate(schema.MetadataGraph{}); len(got) != 0 {
		t.Errorf("Generate() = %v, want none", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "training_data", "instructions_v1.json")

	instructions := []Instruction{newInstruction("What measures are in orders?", "The orders cube has 1 measures: count.")}
	if err := Save(path, instructions); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}

	var decoded []Instruction
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("decoding saved file: %v", err)
	}
	if !reflect.DeepEqual(decoded, instructions) {
		t.Errorf("round trip = %+v, want %+v", decoded, instructions)
	}
}
