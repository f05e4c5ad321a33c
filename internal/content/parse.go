package content

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/lessonloop/internal/llm"
)

// DecodeGeneratorResult validates raw against GeneratorSchema and decodes
// it. Errors are *llm.ErrInvalidResponse.
func DecodeGeneratorResult(raw string) (GeneratorResult, error) {
	var r GeneratorResult
	if err := decode(GeneratorSchema, raw, &r); err != nil {
		return GeneratorResult{}, err
	}
	if r.Questions == nil {
		r.Questions = []Question{}
	}
	return r, nil
}

// ParseGeneratorResult is DecodeGeneratorResult that degrades to
// SentinelResult on any failure.
func ParseGeneratorResult(raw string) GeneratorResult {
	r, err := DecodeGeneratorResult(raw)
	if err != nil {
		return SentinelResult()
	}
	return r
}

// DecodeReviewVerdict validates raw against ReviewSchema and decodes it.
func DecodeReviewVerdict(raw string) (ReviewVerdict, error) {
	var v ReviewVerdict
	if err := decode(ReviewSchema, raw, &v); err != nil {
		return ReviewVerdict{}, err
	}
	if v.Feedback == nil {
		v.Feedback = []string{}
	}
	return v, nil
}

// ParseReviewVerdict is DecodeReviewVerdict that degrades to
// SentinelVerdict on any failure.
func ParseReviewVerdict(raw string) ReviewVerdict {
	v, err := DecodeReviewVerdict(raw)
	if err != nil {
		return SentinelVerdict()
	}
	return v
}

func decode(schema *llm.Schema, raw string, out any) error {
	if err := llm.Validate(schema, []byte(raw)); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &llm.ErrInvalidResponse{
			Content: json.RawMessage(raw),
			Err:     fmt.Errorf("decode %s: %w", schema.Name, err),
		}
	}
	return nil
}
