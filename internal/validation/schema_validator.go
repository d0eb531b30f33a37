// Package validation checks panel documents against the JSON schemas
// compiled into the binary.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// PanelSchema names the embedded schema for crafting panel documents
const PanelSchema = "panel.schema.json"

const schemaDir = "schemas"

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// Sentinel errors for schema validation
var (
	ErrUnknownSchema = errors.New("unknown schema")
	ErrInvalidJSON   = errors.New("invalid JSON document")
	ErrSchemaFailed  = errors.New("schema validation failed")
)

// SchemaValidator validates documents against a named embedded schema
type SchemaValidator interface {
	ValidateBytes(data []byte, schema string) error
}

type validator struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that compiles each schema on first use
func NewSchemaValidator() SchemaValidator {
	return &validator{compiled: make(map[string]*jsonschema.Schema)}
}

// ValidateBytes decodes data as JSON and validates it against schema. Every
// violated constraint is listed in the returned error, sorted by location.
func (v *validator) ValidateBytes(data []byte, schema string) error {
	compiled, err := v.schema(schema)
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%v | %w", err, ErrInvalidJSON)
	}

	if err := compiled.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("%v | %w", err, ErrSchemaFailed)
		}
		return fmt.Errorf("%w:\n%s", ErrSchemaFailed, strings.Join(violations(verr), "\n"))
	}
	return nil
}

func (v *validator) schema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[name]; ok {
		return s, nil
	}

	raw, err := embeddedSchemas.ReadFile(path.Join(schemaDir, name))
	if err != nil {
		return nil, fmt.Errorf("%s | %w", name, ErrUnknownSchema)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	v.compiled[name] = s
	return s, nil
}

// violations flattens the leaf causes of err into "  - /path: keyword" lines
func violations(err *jsonschema.ValidationError) []string {
	seen := make(map[string]bool)
	var out []string

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		line := "  - " + pointer(e.InstanceLocation) + ": " + keyword(e)
		if !seen[line] {
			seen[line] = true
			out = append(out, line)
		}
	}
	walk(err)

	sort.Strings(out)
	return out
}

func pointer(loc []string) string {
	if len(loc) == 0 {
		return "(root)"
	}
	return "/" + strings.Join(loc, "/")
}

func keyword(e *jsonschema.ValidationError) string {
	if e.ErrorKind == nil {
		return "invalid"
	}
	if kp := e.ErrorKind.KeywordPath(); len(kp) > 0 {
		return strings.Join(kp, ".")
	}
	return "invalid"
}
