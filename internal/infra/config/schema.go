// Where: cli/internal/infra/config/schema.go
// What: JSON schema validation for the config file.
// Why: Reject typos and out-of-range values before they reach the run.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/poruru/djscaffold/cli/assets"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaURL = "mem://djscaffold/config.schema.json"

// ErrInvalidConfig wraps every schema violation.
var ErrInvalidConfig = errors.New("invalid config")

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateConfig checks YAML config content against the embedded schema.
// Empty content is valid.
func ValidateConfig(payload []byte) error {
	if strings.TrimSpace(string(payload)) == "" {
		return nil
	}
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("%w: convert yaml to json: %v", ErrInvalidConfig, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return fmt.Errorf("%w: decode json: %v", ErrInvalidConfig, err)
	}
	if document == nil {
		return nil
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(assets.ConfigSchema)); err != nil {
			schemaErr = fmt.Errorf("load config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
