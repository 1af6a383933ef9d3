package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrSchema is returned when a config file does not match the configuration schema.
var ErrSchema = errors.New("config file does not match schema")

//go:embed schema.json
var schemaJSON string

const schemaURL = "cucable.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return schema, nil
})

// ValidateFile checks the YAML config file at path against the configuration schema.
func ValidateFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path)) //#nosec G304 -- path is user-provided config file
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ValidateDocument checks a YAML document against the configuration schema.
// An empty document is valid.
func ValidateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if doc == nil {
		return nil
	}

	// Round trip through JSON so the schema sees plain JSON values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrSchema, strings.Join(schemaMessages(validationErr), "; "))
		}
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

// schemaMessages flattens the leaf causes of a validation error.
func schemaMessages(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{fmt.Sprintf("%s: %s", location, err.Message)}
	}
	var out []string
	for _, cause := range err.Causes {
		out = append(out, schemaMessages(cause)...)
	}
	return out
}
