package question

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. The first failure stops the pipeline.
	Validators []Validator

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with the standard validator chain. Token
// budget and temperature come from the llm question profile.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoiceAnswerValidator{},
			&GradabilityValidator{},
		},
		MaxPriorQuestions: 8,
	}
}
