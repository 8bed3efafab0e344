package openapi

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwiz/pkg/forms"
)

// extensionKey namespaces wizard hints inside property schemas.
const extensionKey = "x-formwiz"

var (
	// ErrOperationNotFound is wrapped when no operation carries the id.
	ErrOperationNotFound = errors.New("openapi: operation not found")

	// ErrNoRequestBody is wrapped when the operation declares no usable
	// request-body schema.
	ErrNoRequestBody = errors.New("openapi: no request body schema")
)

// BuildReport records what Build left out of the form.
type BuildReport struct {
	OperationID string
	Skipped     []SkippedProperty
}

// SkippedProperty names a request-body property that produced no question.
type SkippedProperty struct {
	Name   string
	Reason string
}

// Build walks the request-body schema of the named operation and produces a
// form. Required properties are asked first, each group in alphabetical
// order. A property's x-formwiz extension may gate it on an earlier
// question's answer via requires: {question, equals}.
func Build(doc *openapi3.T, operationID string, opts ...forms.Option) (*forms.Form, BuildReport, error) {
	if doc == nil {
		return nil, BuildReport{}, fmt.Errorf("openapi: document is nil")
	}

	op := operationByID(doc, operationID)
	if op == nil {
		return nil, BuildReport{}, fmt.Errorf("openapi: operation %q: %w", operationID, ErrOperationNotFound)
	}

	schema := requestSchema(op)
	if schema == nil {
		return nil, BuildReport{}, fmt.Errorf("openapi: operation %q: %w", operationID, ErrNoRequestBody)
	}

	report := BuildReport{OperationID: operationID}
	built := make(map[string]bool, len(schema.Properties))
	var questions []forms.Question

	for _, name := range orderedProperties(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			report.Skipped = append(report.Skipped, SkippedProperty{Name: name, Reason: "unresolved schema reference"})
			continue
		}

		q, reason := buildQuestion(name, ref.Value)
		if q == nil {
			report.Skipped = append(report.Skipped, SkippedProperty{Name: name, Reason: reason})
			continue
		}

		target, want, hasReq, err := requiresFor(name, ref.Value)
		if err != nil {
			return nil, report, err
		}
		if hasReq {
			if !built[target] {
				return nil, report, fmt.Errorf("openapi: property %q requires %q which is not asked before it", name, target)
			}
			q.Require(target, want)
		}

		built[name] = true
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, report, fmt.Errorf("openapi: operation %q yields no questions", operationID)
	}

	title := op.Summary
	if title == "" {
		title = operationID
	}
	return forms.New(title, sanitizeText(op.Description), questions, opts...), report, nil
}

func operationByID(doc *openapi3.T, id string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		} {
			if op != nil && op.OperationID == id {
				return op
			}
		}
	}
	return nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// orderedProperties fixes an asking order over the schema's unordered
// property map: required names first, each group sorted alphabetically.
func orderedProperties(schema *openapi3.Schema) []string {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var first, rest []string
	for name := range schema.Properties {
		if required[name] {
			first = append(first, name)
		} else {
			rest = append(rest, name)
		}
	}
	sort.Strings(first)
	sort.Strings(rest)
	return append(first, rest...)
}

func buildQuestion(name string, schema *openapi3.Schema) (forms.Question, string) {
	title := schema.Title
	if title == "" {
		title = name
	}
	description := sanitizeText(schema.Description)

	switch firstType(schema.Type) {
	case "string":
		if len(schema.Enum) > 0 {
			labels, ok := enumStrings(schema.Enum)
			if !ok {
				return nil, "enum values must be strings"
			}
			return forms.NewChoice(name, title, description, labels...), ""
		}
		var topts []forms.TextOption
		if schema.MaxLength != nil {
			topts = append(topts, forms.WithCharacterLimit(int(*schema.MaxLength)))
		}
		return forms.NewText(name, title, description, topts...), ""
	case "integer":
		var iopts []forms.IntegerOption
		if schema.Min != nil || schema.Max != nil {
			lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
			if schema.Min != nil {
				lo = int64(*schema.Min)
			}
			if schema.Max != nil {
				hi = int64(*schema.Max)
			}
			iopts = append(iopts, forms.WithRange(lo, hi))
		}
		return forms.NewInteger(name, title, description, iopts...), ""
	case "boolean":
		def, _ := schema.Default.(bool)
		return forms.NewBoolean(name, title, description, def), ""
	case "array":
		if schema.Items == nil || schema.Items.Value == nil || len(schema.Items.Value.Enum) == 0 {
			return nil, "array items are not an enum"
		}
		labels, ok := enumStrings(schema.Items.Value.Enum)
		if !ok {
			return nil, "enum values must be strings"
		}
		return forms.NewCheckboxes(name, title, description, labels...), ""
	default:
		return nil, fmt.Sprintf("unsupported type %q", firstType(schema.Type))
	}
}

// requiresFor reads the x-formwiz requires hint off a property schema.
func requiresFor(name string, schema *openapi3.Schema) (target string, want any, ok bool, err error) {
	ext, found := schema.Extensions[extensionKey].(map[string]any)
	if !found {
		return "", nil, false, nil
	}
	raw, found := ext["requires"].(map[string]any)
	if !found {
		return "", nil, false, nil
	}

	target, _ = raw["question"].(string)
	if target == "" {
		return "", nil, false, fmt.Errorf("openapi: property %q has a requires extension without a question", name)
	}
	return target, raw["equals"], true, nil
}

func enumStrings(values []any) ([]string, bool) {
	labels := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		labels = append(labels, s)
	}
	return labels, true
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
