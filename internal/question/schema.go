package question

import "github.com/abhisek/bandwise/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "ielts-question",
	Description: "A single IELTS practice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The main question text shown to the candidate",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Labelled options like \"A) ...\" for selectable questions. Empty array otherwise.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The option letter or the exact short answer. Empty string for open-ended writing and speaking prompts.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief explanation of the answer or, for open-ended prompts, what a strong response covers",
			},
			"passage": map[string]any{
				"type":        "string",
				"description": "Reading passage or listening transcript the question refers to. Empty string if none.",
			},
		},
		"required":             []any{"question", "options", "correct_answer", "explanation", "passage"},
		"additionalProperties": false,
	},
}
