// Package schemas validates emitted reports and configuration files against
// JSON Schemas.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/xeipuuv/gojsonschema"

	bundled "github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/schemas"
)

// FieldError is one schema violation.
type FieldError struct {
	Field   string // dotted path, "(root)" for the document itself
	Message string
}

// ValidationError lists every violation of a document against Schema.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Schema == "" {
		sb.WriteString("validation failed:\n")
	} else {
		fmt.Fprintf(&sb, "validation against %s failed:\n", e.Schema)
	}
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema itself could not be read or compiled.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validator compiles schemas on first use and keeps them for later calls.
// It is safe for concurrent use.
type Validator struct {
	source func(name string) ([]byte, error)

	mu       sync.Mutex
	compiled map[string]*gojsonschema.Schema
}

// NewValidator returns a Validator that reads schemas with source.
func NewValidator(source func(name string) ([]byte, error)) *Validator {
	return &Validator{source: source, compiled: make(map[string]*gojsonschema.Schema)}
}

// Bundled validates against the schemas embedded in the binary.
var Bundled = NewValidator(bundled.Read)

func (v *Validator) schema(name string) (*gojsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[name]; ok {
		return s, nil
	}

	content, err := v.source(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema not found", Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	v.compiled[name] = s
	return s, nil
}

// Value validates an in-memory value, as it would be encoded to JSON.
func (v *Validator) Value(name string, value any) error {
	return v.check(name, gojsonschema.NewGoLoader(value))
}

// JSON validates raw JSON content.
func (v *Validator) JSON(name string, content []byte) error {
	return v.check(name, gojsonschema.NewBytesLoader(content))
}

// YAML validates YAML content by its JSON data model.
func (v *Validator) YAML(name string, content []byte) error {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return v.Value(name, doc)
}

// File validates a JSON or YAML file, chosen by extension.
func (v *Validator) File(name, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return v.YAML(name, content)
	default:
		return v.JSON(name, content)
	}
}

func (v *Validator) check(name string, doc gojsonschema.JSONLoader) error {
	s, err := v.schema(name)
	if err != nil {
		return err
	}

	result, err := s.Validate(doc)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: filepath.Base(name)}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

// ValidateBundled validates value against a bundled schema such as
// bundled.ScoreReport.
func ValidateBundled(name string, value any) error {
	return Bundled.Value(name, value)
}

// ValidateBundledJSON validates raw JSON against a bundled schema.
func ValidateBundledJSON(name string, content []byte) error {
	return Bundled.JSON(name, content)
}

// ValidateFile validates the JSON or YAML file at path against schemaRef,
// which is either a bundled schema name or the path of a schema file.
func ValidateFile(schemaRef, path string) error {
	if _, err := bundled.Read(schemaRef); err == nil {
		return Bundled.File(schemaRef, path)
	}
	if _, err := os.Stat(schemaRef); err != nil {
		return &SchemaLoadError{Path: schemaRef, Message: "schema file not found", Cause: err}
	}
	return NewValidator(os.ReadFile).File(schemaRef, path)
}

// ValidateJSONString validates JSON content against a schema given as a string.
func ValidateJSONString(schemaContent, jsonContent string) error {
	const name = "(string schema)"
	v := NewValidator(func(string) ([]byte, error) { return []byte(schemaContent), nil })
	return v.JSON(name, []byte(jsonContent))
}
