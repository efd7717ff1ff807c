package uischema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidPlan is returned for well-formed JSON that is not a usable plan.
var ErrInvalidPlan = errors.New("invalid plan structure")

var structValidator = validator.New()

const (
	planSchemaURL       = "https://uigen.schemas.local/plan.schema.json"
	strictPlanSchemaURL = "https://uigen.schemas.local/plan.strict.schema.json"
)

var (
	planSchema       = mustCompile(planSchemaURL, false)
	strictPlanSchema = mustCompile(strictPlanSchemaURL, true)
)

// CheckShape asserts that v is an object with a truthy "layout" and an array
// "components". It only inspects v.
func CheckShape(v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: plan is not an object", ErrInvalidPlan)
	}
	if !truthy(obj["layout"]) {
		return fmt.Errorf("%w: layout is missing", ErrInvalidPlan)
	}
	if _, ok := obj["components"].([]any); !ok {
		return fmt.Errorf("%w: components is not an array", ErrInvalidPlan)
	}
	return nil
}

type decodeConfig struct {
	strict bool
}

// DecodeOption tunes DecodePlan.
type DecodeOption func(*decodeConfig)

// Strict rejects component types outside AllowedTypes instead of leaving
// them to the renderer's placeholder.
func Strict(strict bool) DecodeOption {
	return func(c *decodeConfig) { c.strict = strict }
}

// DecodePlan checks the top-level shape, validates the whole tree against the
// plan schema and decodes it. Every failure wraps ErrInvalidPlan.
func DecodePlan(raw []byte, opts ...DecodeOption) (UIPlan, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return UIPlan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := CheckShape(v); err != nil {
		return UIPlan{}, err
	}

	schema := planSchema
	if cfg.strict {
		schema = strictPlanSchema
	}
	if err := schema.Validate(v); err != nil {
		return UIPlan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	var plan UIPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return UIPlan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := structValidator.Struct(plan); err != nil {
		return UIPlan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if plan.ModificationType == "" {
		plan.ModificationType = ModificationCreate
	}
	return plan, nil
}

// ParsePlan decodes a plan without validating it. JSON null yields nil.
func ParsePlan(raw []byte) (*UIPlan, error) {
	if t := bytes.TrimSpace(raw); len(t) == 0 || string(t) == "null" {
		return nil, nil
	}
	var plan UIPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("uischema: parse plan: %w", err)
	}
	return &plan, nil
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	case float64:
		return x != 0
	}
	return true
}

func mustCompile(url string, strict bool) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(url, strings.NewReader(planSchemaJSON(strict))); err != nil {
		panic(fmt.Sprintf("uischema: load plan schema: %v", err))
	}
	s, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("uischema: compile plan schema: %v", err))
	}
	return s
}

func planSchemaJSON(strict bool) string {
	typeSchema := map[string]any{"type": "string", "minLength": 1}
	if strict {
		names := make([]string, len(AllowedTypes))
		for i, t := range AllowedTypes {
			names[i] = string(t)
		}
		typeSchema = map[string]any{"enum": names}
	}
	schema := map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"layout", "components"},
		"properties": map[string]any{
			"layout":           map[string]any{"type": "string", "minLength": 1},
			"modificationType": map[string]any{"enum": []string{string(ModificationCreate), string(ModificationUpdate)}},
			"components": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/node"},
			},
		},
		"$defs": map[string]any{
			"node": map[string]any{
				"type":     "object",
				"required": []string{"type"},
				"properties": map[string]any{
					"type":  typeSchema,
					"props": map[string]any{"type": []string{"object", "null"}},
					"children": map[string]any{
						"type":  []string{"array", "null"},
						"items": map[string]any{"$ref": "#/$defs/child"},
					},
				},
			},
			"child": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"$ref": "#/$defs/node"},
				},
			},
		},
	}
	b, _ := json.Marshal(schema)
	return string(b)
}
