package handler

import (
	"strings"

	"kredi/internal/scoring"
	"kredi/pkg/domain"
	dErrors "kredi/pkg/domain-errors"
)

// maxAttributes bounds the request body; the default feature catalog has 17
// features, so anything far beyond that is a malformed or abusive payload.
const maxAttributes = 64

// EvaluateRequest is the HTTP request body for POST /score/evaluate.
type EvaluateRequest struct {
	BorrowerID    string                    `json:"borrower_id"`
	Attributes    map[string]AttributeInput `json:"attributes"`
	AuxTrustScore *float64                  `json:"aux_trust_score,omitempty"`

	// Parsed values (populated by Validate)
	parsedBorrowerID domain.BorrowerID
	parsedInput      scoring.Input
}

// AttributeInput is one borrower attribute with its provenance.
type AttributeInput struct {
	Value  any    `json:"value"`
	Source string `json:"source"`
}

// Validate validates and parses the request.
// Implements the Validator interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Attributes) > maxAttributes {
		return dErrors.New(dErrors.CodeInvalidInput, "too many attributes")
	}

	// Required fields
	r.BorrowerID = strings.TrimSpace(r.BorrowerID)
	if r.BorrowerID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "borrower_id is required")
	}
	borrowerID, err := domain.ParseBorrowerID(r.BorrowerID)
	if err != nil {
		return err
	}
	r.parsedBorrowerID = borrowerID

	if len(r.Attributes) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "at least one attribute is required")
	}

	attributes := make(map[string]scoring.AttributeValue, len(r.Attributes))
	for name, attr := range r.Attributes {
		name = strings.TrimSpace(name)
		if name == "" {
			return dErrors.New(dErrors.CodeInvalidInput, "attribute names must not be empty")
		}
		source := strings.TrimSpace(attr.Source)
		if source == "" {
			return dErrors.New(dErrors.CodeInvalidInput, "attribute "+name+" is missing a source")
		}
		attributes[name] = scoring.AttributeValue{
			Value:  attr.Value,
			Source: scoring.SourceType(source),
		}
	}

	if r.AuxTrustScore != nil && (*r.AuxTrustScore < 0 || *r.AuxTrustScore > 100) {
		return dErrors.New(dErrors.CodeInvalidInput, "aux_trust_score must be between 0 and 100")
	}

	r.parsedInput = scoring.Input{
		Attributes:    attributes,
		AuxTrustScore: r.AuxTrustScore,
	}
	return nil
}

// ParsedBorrowerID returns the validated borrower ID.
func (r *EvaluateRequest) ParsedBorrowerID() domain.BorrowerID {
	return r.parsedBorrowerID
}

// ParsedInput returns the validated engine input.
func (r *EvaluateRequest) ParsedInput() scoring.Input {
	return r.parsedInput
}
