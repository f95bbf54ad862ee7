package fontschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/font.schema.json
var schemaBytes []byte

const schemaURL = "font.schema.json"

// Kind selects which payload shape to validate against.
type Kind string

const (
	KindInput Kind = "input"
	KindPatch Kind = "patch"
	KindSeed  Kind = "seed"
)

// ErrMalformed is returned when a payload cannot be decoded at all.
var ErrMalformed = errors.New("malformed payload")

var (
	compiled    map[Kind]*jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
	printer     = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string `json:"path"`    // Instance location (e.g., "/name", "/0/style")
	Message string `json:"message"` // Human-readable error message
	Keyword string `json:"keyword"` // Schema keyword that failed
}

// String renders the issue as "path: message".
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Summary joins all issues into one line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}

func getSchema(kind Kind) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}

		compiled = make(map[Kind]*jsonschema.Schema, 3)
		for _, k := range []Kind{KindInput, KindPatch, KindSeed} {
			sch, err := c.Compile(schemaURL + "#/$defs/" + string(k))
			if err != nil {
				compileErr = fmt.Errorf("compiling %s schema: %w", k, err)
				return
			}
			compiled[k] = sch
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	sch, ok := compiled[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	return sch, nil
}

// ValidateJSON validates a JSON document against the schema for kind.
// The error return is for decoding or schema compilation failures; decoding
// failures wrap ErrMalformed.
func ValidateJSON(kind Kind, data []byte) (*ValidationResult, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return validate(kind, inst)
}

// ValidateYAML validates a YAML document against the schema for kind.
func ValidateYAML(kind Kind, data []byte) (*ValidationResult, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing YAML: %v", ErrMalformed, err)
	}

	// Round-trip through encoding/json so the validator sees json.Number
	// values and plain maps.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}
	return validate(kind, inst)
}

func validate(kind Kind, inst any) (*ValidationResult, error) {
	schema, err := getSchema(kind)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// issueCollector flattens a ValidationError tree into one issue per
// failing property, skipping repeats.
type issueCollector struct {
	issues []ValidationIssue
	seen   map[ValidationIssue]bool
}

func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	c := &issueCollector{seen: make(map[ValidationIssue]bool)}
	c.walk(ve)
	if len(c.issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return c.issues
}

func (c *issueCollector) walk(ve *jsonschema.ValidationError) {
	keyword := lastKeyword(ve)

	// The name/nombre alternative fails as two "required" branches; report
	// it once, under the current field name.
	if keyword == "anyOf" && allRequired(ve.Causes) {
		c.add(ValidationIssue{
			Path:    instancePath(ve),
			Message: "missing property 'name'",
			Keyword: "required",
		})
		return
	}

	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			c.walk(cause)
		}
		return
	}

	switch keyword {
	case "", "allOf", "$ref", "then":
		// Container keywords only say that a branch failed.
		return
	}
	c.add(ValidationIssue{
		Path:    instancePath(ve),
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	})
}

func (c *issueCollector) add(issue ValidationIssue) {
	if c.seen[issue] {
		return
	}
	c.seen[issue] = true
	c.issues = append(c.issues, issue)
}

func allRequired(causes []*jsonschema.ValidationError) bool {
	if len(causes) == 0 {
		return false
	}
	for _, cause := range causes {
		if len(cause.Causes) > 0 || lastKeyword(cause) != "required" {
			return false
		}
	}
	return true
}

func lastKeyword(ve *jsonschema.ValidationError) string {
	if ve.ErrorKind == nil {
		return ""
	}
	kwPath := ve.ErrorKind.KeywordPath()
	if len(kwPath) == 0 {
		return ""
	}
	return kwPath[len(kwPath)-1]
}

func instancePath(ve *jsonschema.ValidationError) string {
	if len(ve.InstanceLocation) == 0 {
		return ""
	}
	return "/" + strings.Join(ve.InstanceLocation, "/")
}
