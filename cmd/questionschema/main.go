package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"chosenoffset.com/quiztasy/internal/quiz"
)

func main() {
	out := flag.String("out", "questions.schema.json", "where to write the schema")
	flag.Parse()

	r := jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := r.Reflect(new(quiz.File))
	schema.Title = "Final Quiztasy question bank"
	schema.Description = "Multiple-choice questions grouped by difficulty tier (1-3)"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode schema: %v\n", err)
		os.Exit(1)
	}

	if err := writeFile(*out, append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}

// writeFile replaces path atomically through a temp file in the same directory.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".schema-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write schema: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
