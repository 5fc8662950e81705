package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/chameleon.schema.json
var chameleonSchemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func chameleonSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("chameleon.schema.json", chameleonSchemaJSON)
	})
	return schema, schemaErr
}

// Validate checks a YAML document against the Hungry Chameleon schema.
// Unknown keys, wrong types and out-of-range values are reported with the
// offending location.
func Validate(data []byte) error {
	sch, err := chameleonSchema()
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	if doc == nil {
		// An empty document keeps every default
		return nil
	}

	// Round-trip through JSON so numbers and maps have the shapes the
	// validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: convert yaml: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("config: convert yaml: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	return nil
}
