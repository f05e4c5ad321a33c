package content

import "github.com/abhisek/lessonloop/internal/llm"

// questionDefinition is shared by GeneratorSchema's items.
var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question shown to the learner",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    2,
			"description": "The answer choices, at least two",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The correct choice, copied exactly from options",
		},
	},
	"required":             []any{"question", "options", "answer"},
	"additionalProperties": false,
}

// GeneratorSchema constrains generator output. The same definition is sent
// to the model and used to validate the reply.
var GeneratorSchema = &llm.Schema{
	Name:        "generator-result",
	Description: "An age-appropriate explanation of a topic plus multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Explanation of the topic written for the requested grade",
			},
			"questions": map[string]any{
				"type":        "array",
				"items":       questionDefinition,
				"description": "Multiple-choice questions checking understanding",
			},
		},
		"required":             []any{"explanation", "questions"},
		"additionalProperties": false,
	},
}

// ReviewSchema constrains reviewer output.
var ReviewSchema = &llm.Schema{
	Name:        "review-verdict",
	Description: "A pass/fail review of generated educational content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type":        "string",
				"enum":        []any{string(StatusPass), string(StatusFail)},
				"description": "pass if the content is fit for the grade, otherwise fail",
			},
			"feedback": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete issues to fix; may be empty on pass",
			},
		},
		"required":             []any{"status", "feedback"},
		"additionalProperties": false,
	},
}
