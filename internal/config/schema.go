package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
)

// SchemaFileName is written next to config.toml for editor completion.
const SchemaFileName = "config.schema.json"

// Schema reflects the JSON schema of Config, keyed by TOML names.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/sarf/config.schema.json"
	schema.Title = "Sarf Configuration"
	schema.Description = "Configuration schema for sarf, a tabbed browser shell for the terminal"
	return schema
}

// EncodeSchema writes the indented schema to w.
func EncodeSchema(w io.Writer) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}

// WriteSchemaFile writes the schema to path.
func WriteSchemaFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create schema file: %w", err)
	}
	if err := EncodeSchema(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
