package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/milk9111/cannonball/levels"
	"github.com/milk9111/cannonball/prefabs"
)

type schemaFile struct {
	name        string
	title       string
	description string
	value       any
}

var schemaFiles = []schemaFile{
	{
		name:        "projectiles.schema.json",
		title:       "Projectile Type Catalog",
		description: "Validates prefabs/projectiles.yaml",
		value:       new(prefabs.CatalogSpec),
	},
	{
		name:        "ammo.schema.json",
		title:       "Ammunition Catalog",
		description: "Validates prefabs/ammo.yaml",
		value:       new(prefabs.AmmoCatalogSpec),
	},
	{
		name:        "scenario.schema.json",
		title:       "Scenario",
		description: "Validates levels/*.yaml",
		value:       new(levels.Scenario),
	},
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas into")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for _, f := range schemaFiles {
		schema := buildSchema(f)
		if err := writeSchema(filepath.Join(outDir, f.name), schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", f.name, err)
			os.Exit(1)
		}
	}
}

func buildSchema(f schemaFile) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(f.value)
	schema.Title = f.title
	schema.Description = f.description
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
