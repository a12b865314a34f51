package instruct

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verdantlab/schemaloom/pkg/schema"
)

// SystemPrompt is attached to every generated instruction conversation.
const SystemPrompt = "You are a metadata expert for the enterprise data platform. Answer questions about cubes from your knowledge."

// Message is a single chat turn in an instruction conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Instruction is one training example in the messages format expected by
// chat fine-tuning pipelines.
type Instruction struct {
	Messages []Message `json:"messages"`
}

func newInstruction(question, answer string) Instruction {
	return Instruction{Messages: []Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: question},
		{Role: "assistant", Content: answer},
	}}
}

// Generate derives question/answer instruction pairs from the structured
// fields of every entity in the metadata graph. Pairs are emitted per
// entity in document order; entities missing the producing field
// contribute no pair for it.
func Generate(metadata schema.MetadataGraph) []Instruction {
	var instructions []Instruction
	for _, entity := range metadata.Cubes {
		if entity.Name == "" {
			continue
		}
		instructions = append(instructions, entityInstructions(entity)...)
	}
	return instructions
}

func entityInstructions(entity schema.Entity) []Instruction {
	var instructions []Instruction

	if len(entity.Measures) > 0 {
		names := make([]string, 0, len(entity.Measures))
		for _, m := range entity.Measures {
			names = append(names, m.Name)
		}
		instructions = append(instructions, newInstruction(
			fmt.Sprintf("What measures are in %s?", entity.Name),
			fmt.Sprintf(
				"The %s cube has %d measures: %s.",
				entity.Name,
				len(entity.Measures),
				strings.Join(names, ", "),
			),
		))
	}

	if pk, ok := entity.PrimaryKeyDimension(); ok {
		answer := fmt.Sprintf("The primary key is %s.", pk.Name)
		if pk.Type != "" {
			answer = fmt.Sprintf("The primary key is %s, which is a %s dimension.", pk.Name, pk.Type)
		}
		instructions = append(instructions, newInstruction(
			fmt.Sprintf("What is the primary key of %s?", entity.Name),
			answer,
		))
	}

	if entity.Description != "" {
		instructions = append(instructions, newInstruction(
			fmt.Sprintf("What is %s used for?", entity.Name),
			fmt.Sprintf("The %s cube is used for: %s", entity.Name, entity.Description),
		))
	}

	return instructions
}

// Save writes the instructions as a pretty-printed JSON array, creating
// parent directories as needed.
func Save(path string, instructions []Instruction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	content, err := json.MarshalIndent(instructions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode instructions: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write instructions file: %w", err)
	}
	return nil
}
