package question

import (
	"errors"
	"fmt"
)

// ErrGenerationMalformed matches every generated question that could not be
// parsed or failed validation.
var ErrGenerationMalformed = errors.New("generated question malformed")

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Is makes errors.Is(err, ErrGenerationMalformed) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrGenerationMalformed
}
