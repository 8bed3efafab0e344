// Package openapi derives a form from an OpenAPI 3 operation. The
// operation's request-body properties become questions: strings map to text
// input, integers to bounded number input, booleans to yes/no, enums to a
// single choice and enum arrays to checkboxes. Property shapes with no
// question equivalent are skipped and reported, never guessed at.
package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Load parses an OpenAPI 3 document from raw JSON or YAML bytes. External
// references are not followed.
func Load(data []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: false}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// LoadFile parses an OpenAPI 3 document from disk. External references are
// not followed.
func LoadFile(path string) (*openapi3.T, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: false}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return doc, nil
}
