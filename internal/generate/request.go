package generate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/copydrive/copydrive/internal/promptc"
)

//go:embed request.schema.json
var requestSchemaRaw []byte

var (
	requestSchemaOnce sync.Once
	requestSchema     *jsonschema.Schema
	requestSchemaErr  error
)

// Request is the input for one system prompt generation.
type Request struct {
	CopyID          string                   `json:"copyId,omitempty"`
	CopyType        string                   `json:"copyType,omitempty"`
	Framework       string                   `json:"framework,omitempty"`
	Objective       string                   `json:"objective,omitempty"`
	Styles          []string                 `json:"styles,omitempty"`
	EmotionalFocus  string                   `json:"emotionalFocus,omitempty"`
	ProjectIdentity *promptc.ProjectIdentity `json:"projectIdentity,omitempty"`
	Methodology     *promptc.Methodology     `json:"methodology,omitempty"`
	AudienceSegment *promptc.Audience        `json:"audienceSegment,omitempty"`
	Offer           *promptc.Offer           `json:"offer,omitempty"`
}

// CopyContext maps the request's copy-level fields into the compiler's
// input shape.
func (r *Request) CopyContext() promptc.CopyContext {
	return promptc.CopyContext{
		CopyType:       r.CopyType,
		Framework:      r.Framework,
		Objective:      r.Objective,
		Styles:         r.Styles,
		EmotionalFocus: r.EmotionalFocus,
		Audience:       r.AudienceSegment,
		Offer:          r.Offer,
	}
}

func compiledRequestSchema() (*jsonschema.Schema, error) {
	requestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("request.schema.json", bytes.NewReader(requestSchemaRaw)); err != nil {
			requestSchemaErr = fmt.Errorf("failed to load request schema: %w", err)
			return
		}
		requestSchema, requestSchemaErr = compiler.Compile("request.schema.json")
	})
	return requestSchema, requestSchemaErr
}

// ValidateRequestJSON checks a raw request body against the request
// schema before decoding. Returns ErrInvalidRequest-wrapped errors for
// malformed or mistyped bodies.
func ValidateRequestJSON(raw []byte) error {
	schema, err := compiledRequestSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInvalidRequest, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// ParseRequest validates and decodes a raw request body.
func ParseRequest(raw []byte) (*Request, error) {
	if err := ValidateRequestJSON(raw); err != nil {
		return nil, err
	}
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return &req, nil
}
