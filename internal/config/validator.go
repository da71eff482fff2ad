package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"sigs.k8s.io/yaml"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s\n", err.Error()))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
	}, nil
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	return v.ValidateBytes(data)
}

// ValidateBytes validates YAML configuration content.
// An empty document is valid.
func (v *Validator) ValidateBytes(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}
	if trimmed := bytes.TrimSpace(jsonData); len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	value := v.ctx.CompileBytes(jsonData)
	if value.Err() != nil {
		return ValidationErrors{{Message: fmt.Sprintf("invalid config: %v", value.Err())}}
	}
	if value.IncompleteKind() != cue.StructKind {
		return ValidationErrors{{Message: "config must be a mapping"}}
	}

	errs := validateFields(v.schema, value, nil, nil)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateFields walks every field in data and checks it against the
// corresponding schema node.
func validateFields(schema, data cue.Value, path []string, errs ValidationErrors) ValidationErrors {
	iter, err := data.Fields()
	if err != nil {
		return errs
	}

	for iter.Next() {
		sel := iter.Selector()
		fieldVal := iter.Value()
		fieldName := sel.Unquoted()

		fieldPath := make([]string, len(path), len(path)+1)
		copy(fieldPath, path)
		fieldPath = append(fieldPath, fieldName)
		field := strings.Join(fieldPath, ".")

		if !schema.Allows(cue.Str(fieldName)) {
			errs = append(errs, ValidationError{Field: field, Message: "field not allowed"})
			continue
		}

		schemaField := schema.LookupPath(cue.MakePath(sel))
		if !schemaField.Exists() {
			schemaField = schema.LookupPath(cue.MakePath(cue.Str(fieldName).Optional()))
		}
		if !schemaField.Exists() {
			continue
		}

		if fieldVal.IncompleteKind() == cue.StructKind && schemaField.IncompleteKind() == cue.StructKind {
			errs = validateFields(schemaField, fieldVal, fieldPath, errs)
			continue
		}

		unified := schemaField.Unify(fieldVal)
		if fieldErr := unified.Validate(cue.Concrete(true)); fieldErr != nil {
			errs = append(errs, ValidationError{Field: field, Message: cueMessage(fieldErr)})
		}
	}
	return errs
}

// cueMessage flattens a CUE error into a single line without positions.
func cueMessage(err error) string {
	var parts []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		if format != "" {
			parts = append(parts, fmt.Sprintf(format, args...))
		}
	}
	if len(parts) == 0 {
		return err.Error()
	}
	return strings.Join(parts, "; ")
}
